package scene

import (
	"context"
	"strconv"
	"time"

	"github.com/zeusync/geogeo/internal/core/observability/log"
	"github.com/zeusync/geogeo/pkg/collision"
	"github.com/zeusync/geogeo/pkg/concurrent"
)

// PairResult is the outcome of one intersection test.
type PairResult struct {
	A          string `json:"a" yaml:"a"`
	B          string `json:"b" yaml:"b"`
	KindA      string `json:"kind_a" yaml:"kind_a"`
	KindB      string `json:"kind_b" yaml:"kind_b"`
	Intersects bool   `json:"intersects" yaml:"intersects"`
}

// Report summarizes an evaluation.
type Report struct {
	Shapes      int           `json:"shapes" yaml:"shapes"`
	Pairs       int           `json:"pairs" yaml:"pairs"`
	Hits        int           `json:"hits" yaml:"hits"`
	Elapsed     time.Duration `json:"elapsed" yaml:"elapsed"`
	Fingerprint string        `json:"fingerprint" yaml:"fingerprint"`
	Results     []PairResult  `json:"results" yaml:"results"`
}

// Evaluate tests every pair of the scene with up to workers goroutines.
// Results keep the pair order. Cancelling ctx stops evaluation before the
// next pair is tested.
func (s *Scene) Evaluate(ctx context.Context, workers int) (*Report, error) {
	start := time.Now()

	results, err := concurrent.ParallelMap(ctx, s.pairs, workers, func(_ context.Context, p Pair) (PairResult, error) {
		a, b := s.entries[p.A], s.entries[p.B]
		hit := collision.Intersects(a.Shape, b.Shape)
		s.logger.Debug("pair tested",
			log.String("a", a.Name),
			log.String("b", b.Name),
			log.Bool("intersects", hit),
		)
		return PairResult{
			A:          a.Name,
			B:          b.Name,
			KindA:      a.Shape.Kind().String(),
			KindB:      b.Shape.Kind().String(),
			Intersects: hit,
		}, nil
	})
	if err != nil {
		s.logger.Warn("evaluation aborted", log.Error(err))
		return nil, err
	}

	report := &Report{
		Shapes:      len(s.entries),
		Pairs:       len(results),
		Fingerprint: strconv.FormatUint(s.Fingerprint(), 16),
		Results:     results,
	}
	for _, r := range results {
		if r.Intersects {
			report.Hits++
		}
	}
	report.Elapsed = time.Since(start)

	s.logger.Info("scene evaluated",
		log.Int("shapes", report.Shapes),
		log.Int("pairs", report.Pairs),
		log.Int("hits", report.Hits),
		log.Duration("elapsed", report.Elapsed),
		log.String("fingerprint", report.Fingerprint),
	)

	return report, nil
}
