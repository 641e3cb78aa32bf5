package screening

import (
	"context"

	"github.com/mindbase/mindbase/internal/store"
)

// ResultRepository defines the data access contract for screening results.
type ResultRepository interface {
	// List returns the user's results oldest first, empty when the user
	// has never completed a questionnaire.
	List(ctx context.Context, userID string) ([]Result, error)
	// Save appends the result at the tail of the user's list.
	Save(ctx context.Context, userID string, result Result) error
}

// resultRepository implements ResultRepository on a per-user collection.
type resultRepository struct {
	coll *store.Collection[Result]
}

// NewResultRepository creates a screening result repository over the record store.
func NewResultRepository(s store.Store) ResultRepository {
	return &resultRepository{
		coll: store.NewCollection[Result](s, store.KeyResults, store.AppendChronological),
	}
}

func (r *resultRepository) List(ctx context.Context, userID string) ([]Result, error) {
	return r.coll.List(ctx, userID)
}

func (r *resultRepository) Save(ctx context.Context, userID string, result Result) error {
	return r.coll.Save(ctx, userID, result)
}
