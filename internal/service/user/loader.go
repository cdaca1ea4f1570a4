package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/signdeck-backend/internal/domain"
)

const (
	loaderMaxBatch = 100
	loaderWait     = 2 * time.Millisecond
)

// newUserCardsLoader batches assignment lookups by user id. A loader caches
// results, so one is created per projection call.
func newUserCardsLoader(repo userCardRepo) *dataloader.Loader[uuid.UUID, []domain.UserCard] {
	return dataloader.NewBatchedLoader(
		newUserCardsBatchFn(repo),
		dataloader.WithWait[uuid.UUID, []domain.UserCard](loaderWait),
		dataloader.WithBatchCapacity[uuid.UUID, []domain.UserCard](loaderMaxBatch),
	)
}

func newUserCardsBatchFn(repo userCardRepo) dataloader.BatchFunc[uuid.UUID, []domain.UserCard] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.UserCard] {
		userCards, err := repo.GetByUserIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.UserCard](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.UserCard, len(keys))
		for _, uc := range userCards {
			grouped[uc.UserID] = append(grouped[uc.UserID], uc)
		}

		return mapResults(keys, grouped, emptySlice[domain.UserCard])
	}
}

// errorResults returns n results carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func emptySlice[T any]() []T {
	return []T{}
}
