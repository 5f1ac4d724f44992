// Package fanout runs one function over many items with a worker limit. The
// webhook notifier uses it to deliver an overdue event to every configured
// URL at once.
package fanout

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Result is one item's outcome: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most maxWorkers in flight and returns
// the results in input order. It waits for all of them.
//
// An item still queued when ctx is canceled gets ctx.Err() without fn being
// called; running items are left to honour ctx themselves. maxWorkers below
// 1 means 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Value, results[i].Err = fn(ctx, item)
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Each is Run for functions with no result value. It returns the joined
// errors of every failed item.
func Each[T any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) error) error {
	return Join(Run(ctx, maxWorkers, items, func(ctx context.Context, item T) (struct{}, error) {
		return struct{}{}, fn(ctx, item)
	}))
}

// Join returns the failed results' errors joined, or nil.
func Join[R any](results []Result[R]) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}
