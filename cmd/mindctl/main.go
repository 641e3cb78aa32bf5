// Package main is mindctl, the operator CLI for a MindBase deployment. It
// talks to the record store directly, so backups work even when the server
// is down.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mindbase/mindbase/internal/config"
	"github.com/mindbase/mindbase/internal/database"
	"github.com/mindbase/mindbase/internal/plugins/backup"
	"github.com/mindbase/mindbase/internal/store"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newCodec reads the config, connects to the record store, and builds a
// backup codec. The caller must call the returned cleanup function.
func newCodec() (backup.Codec, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	rdb, err := database.NewRedis(cfg.Store)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to the record store: %w", err)
	}

	s := store.NewRedisStore(rdb, cfg.Store.KeyPrefix)
	return backup.NewCodec(s), func() { rdb.Close() }, nil
}

var rootCmd = &cobra.Command{
	Use:   "mindctl",
	Short: "MindBase operator tool",
}

// backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage record store backups",
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Write a backup of the record store",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		codec, cleanup, err := newCodec()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		doc, err := codec.Create(ctx)
		if err != nil {
			return fmt.Errorf("creating backup: %w", err)
		}

		if out == "-" {
			_, err = os.Stdout.Write(append(doc, '\n'))
			return err
		}
		if out == "" {
			out = fmt.Sprintf("mindbase-backup-%s.json", time.Now().UTC().Format("2006-01-02"))
		}
		if err := os.WriteFile(out, doc, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}

		fmt.Printf("Backup written to %s\n", out)
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Restore the record store from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		codec, cleanup, err := newCodec()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := codec.Restore(ctx, data); err != nil {
			return fmt.Errorf("restoring: %w", err)
		}

		fmt.Printf("Restored record store from %s\n", args[0])
		return nil
	},
}

func init() {
	backupCmd.AddCommand(backupCreateCmd)
	backupCreateCmd.Flags().StringP("out", "o", "", "Output file ('-' for stdout, default mindbase-backup-<date>.json)")
	backupCmd.AddCommand(backupRestoreCmd)

	rootCmd.AddCommand(backupCmd)
}
