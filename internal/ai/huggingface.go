package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/mindbase/mindbase/internal/config"
)

// topEmotions is how many of the highest-scoring labels are kept per entry.
const topEmotions = 2

// Sentinel label lists returned when inference is unavailable. Single
// lowercase-containing entries so the collective mood window can filter
// them out ("error"/"loading"/"missing" substrings are never counted).
var (
	labelsNoKey        = []string{"Neutral"}
	labelsModelLoading = []string{"model loading..."}
	labelsFailure      = []string{"analysis error"}
	labelsUnexpected   = []string{"neutral"}
)

// Labeler assigns emotion labels to free text. Implementations must not
// return errors; on failure they return a one-element sentinel list.
type Labeler interface {
	Label(ctx context.Context, text string) []string
}

// hfLabeler implements Labeler against a Hugging Face style inference API.
type hfLabeler struct {
	cfg    config.AIConfig
	client *http.Client
}

// NewLabeler creates the default emotion labeling client.
func NewLabeler(cfg config.AIConfig) Labeler {
	return &hfLabeler{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// hfPrediction is one scored label from the classification response. The
// API returns a nested array: [[{label, score}, ...]].
type hfPrediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Label classifies text and returns the top labels ranked by score.
func (h *hfLabeler) Label(ctx context.Context, text string) []string {
	if h.cfg.HFAPIKey == "" {
		slog.Warn("emotion labeling unavailable: HF_API_KEY not set")
		return labelsNoKey
	}

	payload, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		slog.Error("encoding inference request", slog.Any("error", err))
		return labelsFailure
	}

	url := fmt.Sprintf("%s/models/%s", h.cfg.HFBaseURL, h.cfg.HFModel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		slog.Error("building inference request", slog.Any("error", err))
		return labelsFailure
	}
	req.Header.Set("Authorization", "Bearer "+h.cfg.HFAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		slog.Warn("emotion inference request failed", slog.Any("error", err))
		return labelsFailure
	}
	defer resp.Body.Close()

	// Free-tier inference answers 503 while the model is cold-starting.
	if resp.StatusCode == http.StatusServiceUnavailable {
		return labelsModelLoading
	}
	if resp.StatusCode != http.StatusOK {
		slog.Warn("emotion inference returned non-OK status",
			slog.Int("status", resp.StatusCode),
		)
		return labelsFailure
	}

	var result [][]hfPrediction
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Warn("decoding inference response", slog.Any("error", err))
		return labelsFailure
	}

	if len(result) == 0 || len(result[0]) == 0 {
		return labelsUnexpected
	}

	predictions := result[0]
	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Score > predictions[j].Score
	})

	n := topEmotions
	if len(predictions) < n {
		n = len(predictions)
	}
	labels := make([]string, 0, n)
	for _, p := range predictions[:n] {
		labels = append(labels, p.Label)
	}
	return labels
}
