package calculation

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"

	"github.com/rpgo/hullwhite/internal/domain"
	"golang.org/x/sync/errgroup"
)

// MonteCarloConfig holds configuration for Monte Carlo bond pricing
type MonteCarloConfig struct {
	NumPaths int
	Workers  int   // <= 0 uses GOMAXPROCS
	Seed     int64 // 0 picks a seed
}

// MonteCarloResult represents the results of a Monte Carlo pricing run
type MonteCarloResult struct {
	Prices           []float64               `json:"prices"`
	Mean             float64                 `json:"mean"`
	StdDev           float64                 `json:"std_dev"`
	StdError         float64                 `json:"std_error"`
	PercentileRanges domain.PercentileRanges `json:"percentile_ranges"`
	NumPaths         int                     `json:"num_paths"`
	Seed             int64                   `json:"seed"`
}

// Summary drops the per-path prices.
func (r *MonteCarloResult) Summary() *domain.MonteCarloSummary {
	return &domain.MonteCarloSummary{
		NumPaths:         r.NumPaths,
		Seed:             r.Seed,
		Mean:             r.Mean,
		StdDev:           r.StdDev,
		StdError:         r.StdError,
		PercentileRanges: r.PercentileRanges,
	}
}

// MonteCarloPricer averages single-path zero-coupon prices over independent paths.
type MonteCarloPricer struct {
	NumPaths int
	Workers  int
	Seed     int64
	Logger   Logger
}

// NewMonteCarloPricer creates a new Monte Carlo pricer
func NewMonteCarloPricer(config MonteCarloConfig) *MonteCarloPricer {
	workers := config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &MonteCarloPricer{
		NumPaths: config.NumPaths,
		Workers:  workers,
		Seed:     resolveSeed(config.Seed),
		Logger:   NopLogger{},
	}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (mcp *MonteCarloPricer) SetLogger(l Logger) {
	mcp.Logger = loggerOrNop(l)
}

// RunSimulation prices NumPaths independent paths in parallel. Path k always
// uses stream k of the seed, so results do not depend on the worker count.
// Workers <= 0 uses GOMAXPROCS and Seed 0 picks a seed.
func (mcp *MonteCarloPricer) RunSimulation(ctx context.Context, params domain.ModelParameters, grid domain.SimulationGrid) (*MonteCarloResult, error) {
	if mcp.NumPaths < 1 {
		return nil, fmt.Errorf("%w: number of paths must be at least 1, got %d", domain.ErrInvalidParameter, mcp.NumPaths)
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	workers := mcp.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	seed := resolveSeed(mcp.Seed)

	logger := loggerOrNop(mcp.Logger)
	logger.Debugf("monte carlo: %d paths, %d steps, %d workers, seed %d", mcp.NumPaths, grid.Steps, workers, seed)

	prices := make([]float64, mcp.NumPaths)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for k := 0; k < mcp.NumPaths; k++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			price, err := PriceZeroCouponBond(params, grid, NewStream(seed, uint64(k)))
			if err != nil {
				return fmt.Errorf("path %d: %w", k, err)
			}
			prices[k] = price
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mean, stdDev := meanStdDev(prices)
	result := &MonteCarloResult{
		Prices:           prices,
		Mean:             mean,
		StdDev:           stdDev,
		StdError:         stdDev / math.Sqrt(float64(len(prices))),
		PercentileRanges: calculatePercentileRanges(prices),
		NumPaths:         mcp.NumPaths,
		Seed:             seed,
	}
	logger.Infof("monte carlo: mean %.8f, std error %.8f over %d paths", result.Mean, result.StdError, result.NumPaths)
	return result, nil
}

// meanStdDev returns the sample mean and the unbiased sample standard deviation.
func meanStdDev(values []float64) (mean, stdDev float64) {
	n := float64(len(values))
	if n == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += v
	}
	mean /= n
	if len(values) < 2 {
		return mean, 0
	}
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss / (n - 1))
}

// calculatePercentileRanges reads sorted[floor(p*n)] from a sorted copy, which is
// one rank above nearest-rank when p*n is a whole number.
func calculatePercentileRanges(values []float64) domain.PercentileRanges {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n == 0 {
		return domain.PercentileRanges{}
	}
	return domain.PercentileRanges{
		P10: sorted[n/10],
		P25: sorted[n/4],
		P50: sorted[n/2],
		P75: sorted[3*n/4],
		P90: sorted[9*n/10],
	}
}
