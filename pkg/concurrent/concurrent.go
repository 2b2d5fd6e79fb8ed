package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ParallelMap applies fn to every element of in using at most workers
// goroutines and returns the results in input order. A workers value of
// zero or less means one goroutine per element.
//
// The first error returned by fn cancels the context passed to the other
// calls and is returned once every started call has finished.
func ParallelMap[T any, R any](ctx context.Context, in []T, workers int, fn func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(in))
	group, groupCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		group.SetLimit(workers)
	}

	for idx, val := range in {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			res, err := fn(groupCtx, val)
			if err != nil {
				return err
			}
			out[idx] = res
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
