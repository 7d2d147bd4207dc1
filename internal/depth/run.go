package depth

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Suffix is appended to a depth file path to name its output.
const Suffix = ".depthn"

// Run annotates every path into path+Suffix with up to threads files in
// flight (runtime.NumCPU() when threads < 1). Regions are shared read-only.
// The first failure cancels files that have not started yet. done, if not
// nil, is called from the worker after each file completes.
func Run(ctx context.Context, regions []Region, paths []string, threads int, done func(path string, st Stats)) error {
	if threads < 1 {
		threads = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for _, p := range paths {
		p := p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			st, err := File(regions, p, p+Suffix)
			if err != nil {
				return err
			}
			if done != nil {
				done(p, st)
			}
			return nil
		})
	}
	return g.Wait()
}
