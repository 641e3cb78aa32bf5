package screening

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mindbase/mindbase/internal/apperror"
)

// ScreeningService scores questionnaires and keeps the result history.
type ScreeningService interface {
	// Questions returns the static questionnaire.
	Questions() Questionnaire
	// Submit validates the answers, scores them, and persists the result.
	Submit(ctx context.Context, userID string, answers []int) (*Result, error)
	// Results lists the user's past results, oldest first.
	Results(ctx context.Context, userID string) ([]Result, error)
}

type screeningService struct {
	repo ResultRepository
}

// NewScreeningService creates a screening service backed by the given repository.
func NewScreeningService(repo ResultRepository) ScreeningService {
	return &screeningService{repo: repo}
}

func (s *screeningService) Questions() Questionnaire {
	return Questionnaire{Questions: questions, Options: options}
}

func (s *screeningService) Submit(ctx context.Context, userID string, answers []int) (*Result, error) {
	if len(answers) != len(questions) {
		return nil, apperror.NewValidation(
			fmt.Sprintf("expected %d answers, got %d", len(questions), len(answers)))
	}

	total := 0
	for i, a := range answers {
		if a < minAnswerScore || a > maxAnswerScore {
			return nil, apperror.NewValidation(
				fmt.Sprintf("answer %d is out of range", i+1))
		}
		total += a
	}

	result := Result{
		ID:             uuid.NewString(),
		UserID:         userID,
		Date:           time.Now().UTC().Format(time.RFC3339),
		Score:          total,
		Interpretation: interpret(total),
	}

	if err := s.repo.Save(ctx, userID, result); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("saving result: %w", err))
	}
	return &result, nil
}

func (s *screeningService) Results(ctx context.Context, userID string) ([]Result, error) {
	results, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("loading results: %w", err))
	}
	return results, nil
}
