package screening

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mindbase/mindbase/internal/apperror"
)

// --- Mocks ---

// mockResultRepo implements ResultRepository for testing.
type mockResultRepo struct {
	listFn func(ctx context.Context, userID string) ([]Result, error)
	saveFn func(ctx context.Context, userID string, result Result) error

	saved []Result
}

func (m *mockResultRepo) List(ctx context.Context, userID string) ([]Result, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockResultRepo) Save(ctx context.Context, userID string, result Result) error {
	m.saved = append(m.saved, result)
	if m.saveFn != nil {
		return m.saveFn(ctx, userID, result)
	}
	return nil
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Type != "validation_error" {
		t.Errorf("expected validation_error, got %q", appErr.Type)
	}
}

// --- Tests ---

func TestQuestions_StaticForm(t *testing.T) {
	svc := NewScreeningService(&mockResultRepo{})

	q := svc.Questions()
	if len(q.Questions) != 7 {
		t.Fatalf("expected 7 questions, got %d", len(q.Questions))
	}
	if len(q.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(q.Options))
	}
	if q.Options[0].Label != "Not at all" || q.Options[0].Score != 0 {
		t.Errorf("unexpected first option %+v", q.Options[0])
	}
	if q.Options[3].Label != "Nearly every day" || q.Options[3].Score != 3 {
		t.Errorf("unexpected last option %+v", q.Options[3])
	}
}

func TestSubmit_ScoresAndInterprets(t *testing.T) {
	cases := []struct {
		name      string
		answers   []int
		wantScore int
		wantLabel string
	}{
		{"all zero", []int{0, 0, 0, 0, 0, 0, 0}, 0, "Minimal anxiety"},
		{"upper minimal", []int{1, 1, 1, 1, 0, 0, 0}, 4, "Minimal anxiety"},
		{"lower mild", []int{1, 1, 1, 1, 1, 0, 0}, 5, "Mild anxiety"},
		{"upper mild", []int{2, 2, 2, 2, 1, 0, 0}, 9, "Mild anxiety"},
		{"lower moderate", []int{2, 2, 2, 2, 2, 0, 0}, 10, "Moderate anxiety"},
		{"upper moderate", []int{2, 2, 2, 2, 2, 2, 2}, 14, "Moderate anxiety"},
		{"lower severe", []int{3, 2, 2, 2, 2, 2, 2}, 15, "Severe anxiety"},
		{"maximum", []int{3, 3, 3, 3, 3, 3, 3}, 21, "Severe anxiety"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockResultRepo{}
			svc := NewScreeningService(repo)

			result, err := svc.Submit(context.Background(), "u1", tc.answers)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Score != tc.wantScore {
				t.Errorf("expected score %d, got %d", tc.wantScore, result.Score)
			}
			if result.Interpretation != tc.wantLabel {
				t.Errorf("expected %q, got %q", tc.wantLabel, result.Interpretation)
			}
			if len(repo.saved) != 1 {
				t.Fatalf("expected the result to be saved, got %d saves", len(repo.saved))
			}
		})
	}
}

func TestSubmit_StampsIdentityAndDate(t *testing.T) {
	svc := NewScreeningService(&mockResultRepo{})

	result, err := svc.Submit(context.Background(), "u1", []int{1, 1, 1, 1, 1, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ID == "" {
		t.Error("expected a generated id")
	}
	if result.UserID != "u1" {
		t.Errorf("expected userId u1, got %q", result.UserID)
	}
	if _, perr := time.Parse(time.RFC3339, result.Date); perr != nil {
		t.Errorf("expected an ISO date, got %q: %v", result.Date, perr)
	}
}

func TestSubmit_RejectsWrongAnswerCount(t *testing.T) {
	repo := &mockResultRepo{}
	svc := NewScreeningService(repo)

	for _, answers := range [][]int{nil, {1, 2, 3}, {0, 0, 0, 0, 0, 0, 0, 0}} {
		_, err := svc.Submit(context.Background(), "u1", answers)
		if err == nil {
			t.Fatalf("expected an error for %d answers", len(answers))
		}
		assertValidationError(t, err)
	}
	if len(repo.saved) != 0 {
		t.Error("nothing should be saved for invalid submissions")
	}
}

func TestSubmit_RejectsOutOfRangeScores(t *testing.T) {
	svc := NewScreeningService(&mockResultRepo{})

	for _, answers := range [][]int{
		{-1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 4, 0, 0, 0},
	} {
		_, err := svc.Submit(context.Background(), "u1", answers)
		if err == nil {
			t.Fatal("expected an error for an out-of-range answer")
		}
		assertValidationError(t, err)
	}
}

func TestSubmit_SaveFailure(t *testing.T) {
	repo := &mockResultRepo{
		saveFn: func(ctx context.Context, userID string, result Result) error {
			return errors.New("write failed")
		},
	}

	svc := NewScreeningService(repo)
	_, err := svc.Submit(context.Background(), "u1", []int{0, 0, 0, 0, 0, 0, 0})
	if err == nil {
		t.Fatal("expected an error")
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != 500 {
		t.Errorf("expected a 500 AppError, got %v", err)
	}
}

func TestResults_EmptyForNewUser(t *testing.T) {
	svc := NewScreeningService(&mockResultRepo{})

	results, err := svc.Results(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %v", results)
	}
}
