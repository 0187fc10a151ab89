package tests

import (
	"math/rand"
	"time"
)

// Randomizer feeds property-style tests. Failures print the seed so a run can
// be replayed with NewSeededRandomizer.
type Randomizer struct {
	Seed     int64
	Float64  func() float64
	Bool     func() bool
	Intn     func(n int) int
	Duration func(maxAbs time.Duration) time.Duration
}

func NewRandomizer() Randomizer {
	return NewSeededRandomizer(time.Now().UnixNano())
}

func NewSeededRandomizer(seed int64) Randomizer {
	random := rand.New(rand.NewSource(seed)) //nolint:gosec // for tests

	return Randomizer{
		Seed:    seed,
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Intn:    random.Intn,
		// Duration is uniform in [-maxAbs, maxAbs] at second precision.
		Duration: func(maxAbs time.Duration) time.Duration {
			span := int64(maxAbs / time.Second)
			return time.Duration(random.Int63n(2*span+1)-span) * time.Second
		},
	}
}
