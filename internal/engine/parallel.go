package engine

import (
	"context"
	"sync"

	"github.com/san-kum/traject/internal/motion"
)

// Ensemble runs several independent trajectories concurrently. Each run
// gets its own generator from the factory, so no state is shared between
// goroutines; within a run, evaluation stays strictly sequential.
type Ensemble struct {
	factory func() motion.Generator
	numRuns int
}

func NewEnsemble(factory func() motion.Generator, numRuns int) *Ensemble {
	return &Ensemble{factory: factory, numRuns: numRuns}
}

func (e *Ensemble) Run(ctx context.Context, cfg motion.Config) ([]*motion.Result, error) {
	results := make([]*motion.Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			d := New(e.factory())
			results[idx], errs[idx] = d.Run(ctx, cfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
