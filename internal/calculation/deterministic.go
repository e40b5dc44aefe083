package calculation

import "time"

// nowFunc stamps generated reports (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// seedFunc picks a seed when a scenario or Monte Carlo run leaves it at zero.
var seedFunc = func() int64 { return time.Now().UnixNano() }

// SetSeedFunc overrides the seed provider (use only in tests).
func SetSeedFunc(f func() int64) { seedFunc = f }

func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return seedFunc()
	}
	return seed
}

// NewSeed returns a seed from the seed provider.
func NewSeed() int64 { return seedFunc() }
