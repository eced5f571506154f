package insolation

import (
	"context"
	"runtime"

	"github.com/san-kum/milankovitch/internal/series"
	"golang.org/x/sync/errgroup"
)

// chunk is the number of timesteps one worker evaluates between context checks.
const chunk = 512

// OrbitAt returns the orbital state of ds at index i.
func OrbitAt(ds *series.Dataset, i int) Orbit {
	return NewOrbit(ds.Eccentricity[i], ds.Obliquity[i], ds.PrecessionTilt[i])
}

// Series evaluates insolation at one latitude and solar longitude for every
// timestep of ds. Work is split into chunks over at most workers goroutines;
// workers <= 0 uses GOMAXPROCS.
func Series(ctx context.Context, ds *series.Dataset, latDeg, lonDeg float64, workers int) ([]float64, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]float64, ds.Len())

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(out); start += chunk {
		start, end := start, min(start+chunk, len(out))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				out[i] = At(OrbitAt(ds, i), latDeg, lonDeg)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
