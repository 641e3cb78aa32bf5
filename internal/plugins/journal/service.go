package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mindbase/mindbase/internal/ai"
	"github.com/mindbase/mindbase/internal/apperror"
)

// JournalService defines the business logic contract for the mood journal.
type JournalService interface {
	List(ctx context.Context, userID string) ([]Entry, error)
	// Create labels the content via the emotion service and stores a new
	// entry at the head of the user's list. The labeling boundary never
	// fails; sentinel labels are stored like real ones.
	Create(ctx context.Context, userID, title, content string) (*Entry, error)
	// Update re-labels and replaces an existing entry in place. Returns
	// NotFound for an unknown id.
	Update(ctx context.Context, userID, entryID, title, content string) (*Entry, error)
	// Mood returns the collective mood over the user's recent entries.
	Mood(ctx context.Context, userID string) (string, error)
}

// journalService implements JournalService.
type journalService struct {
	repo    EntryRepository
	labeler ai.Labeler
}

// NewJournalService creates the journal service with the given dependencies.
func NewJournalService(repo EntryRepository, labeler ai.Labeler) JournalService {
	return &journalService{repo: repo, labeler: labeler}
}

// List returns the user's entries, newest first.
func (s *journalService) List(ctx context.Context, userID string) ([]Entry, error) {
	entries, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("loading journal: %w", err))
	}
	return entries, nil
}

// Create stores a new analyzed entry.
func (s *journalService) Create(ctx context.Context, userID, title, content string) (*Entry, error) {
	entry := Entry{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      title,
		Content:    content,
		Timestamp:  time.Now().UnixMilli(),
		Emotions:   s.labeler.Label(ctx, content),
		IsAnalyzed: true,
	}

	if err := s.repo.Save(ctx, userID, entry); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("saving entry: %w", err))
	}
	return &entry, nil
}

// Update re-analyzes and replaces an existing entry. The entry keeps its
// id, creation timestamp, and list position.
func (s *journalService) Update(ctx context.Context, userID, entryID, title, content string) (*Entry, error) {
	entries, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("loading journal: %w", err))
	}

	var existing *Entry
	for i := range entries {
		if entries[i].ID == entryID {
			existing = &entries[i]
			break
		}
	}
	if existing == nil {
		return nil, apperror.NewNotFound("journal entry not found")
	}

	updated := *existing
	updated.Title = title
	updated.Content = content
	updated.Emotions = s.labeler.Label(ctx, content)
	updated.IsAnalyzed = true

	if err := s.repo.Save(ctx, userID, updated); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("saving entry: %w", err))
	}
	return &updated, nil
}

// Mood aggregates the collective mood over the recent window.
func (s *journalService) Mood(ctx context.Context, userID string) (string, error) {
	entries, err := s.repo.List(ctx, userID)
	if err != nil {
		return "", apperror.NewInternal(fmt.Errorf("loading journal: %w", err))
	}
	return CollectiveMood(entries), nil
}
