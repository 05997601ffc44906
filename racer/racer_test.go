package racer_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrace/bird"
	"github.com/katalvlaran/lvrace/racer"
	"github.com/katalvlaran/lvrace/vehicle"
)

// lineUp returns the classic mixed line-up:
// African, European, Unknown, King Penguin, Swift 5.1, Felipe, Giacomo.
func lineUp() []racer.Racer {
	return []racer.Racer{
		bird.African,
		bird.European,
		bird.Unknown,
		bird.NewPenguin("King Penguin"),
		bird.NewSwiftBird(5.1),
		bird.NewFlappyBird("Felipe", 3.0, 20.0),
		vehicle.NewMotorcycle("Giacomo"),
	}
}

// fixed is a user-defined racer, proving TopSpeed is not tied to known variants.
type fixed float64

func (f fixed) Speed() float64 { return float64(f) }

// TestTopSpeed_Empty verifies the zero fallback for nil and empty input.
func TestTopSpeed_Empty(t *testing.T) {
	assert.Equal(t, 0.0, racer.TopSpeed[racer.Racer](nil))
	assert.Equal(t, 0.0, racer.TopSpeed([]racer.Racer{}))
	assert.Equal(t, 0.0, racer.TopSpeedSeq[racer.Racer](nil))
	assert.Equal(t, 0.0, racer.TopSpeedSeq(slices.Values([]fixed{})))
}

// TestTopSpeed_Demo ranks the demo scenario and its sub-ranges.
func TestTopSpeed_Demo(t *testing.T) {
	penguin := bird.NewPenguin("King Penguin")
	moto := vehicle.NewMotorcycle("Giacomo")
	racers := []racer.Racer{
		bird.NewFlappyBird("Felipe", 3.0, 20.0),
		penguin,
		bird.NewSwiftBird(5.1),
		moto,
	}
	assert.InDelta(t, 5100.0, racer.TopSpeed(racers), 1e-9)
	assert.Equal(t, 200.0, racer.TopSpeed([]racer.Racer{penguin, moto}))
}

// TestTopSpeed_LineUp ranks the classic line-up; the Unknown swallow races at 0
// and does not abort the reduction.
func TestTopSpeed_LineUp(t *testing.T) {
	racers := lineUp()
	require.NotPanics(t, func() { racer.TopSpeed(racers) })
	assert.InDelta(t, 5100.0, racer.TopSpeed(racers), 1e-9)
	assert.Equal(t, 42.0, racer.TopSpeed(racers[1:4]), "European, Unknown, Penguin")
}

// TestTopSpeed_SubRangeMatchesFreshSlice checks every contiguous window against a copy.
func TestTopSpeed_SubRangeMatchesFreshSlice(t *testing.T) {
	racers := lineUp()
	for i := 0; i <= len(racers); i++ {
		for j := i; j <= len(racers); j++ {
			fresh := slices.Clone(racers[i:j])
			assert.Equal(t, racer.TopSpeed(fresh), racer.TopSpeed(racers[i:j]), "window [%d:%d]", i, j)
		}
	}
}

// TestTopSpeed_PermutationInvariant shuffles the line-up repeatedly.
func TestTopSpeed_PermutationInvariant(t *testing.T) {
	racers := lineUp()
	want := racer.TopSpeed(racers)
	rng := rand.New(rand.NewSource(42))
	for n := 0; n < 50; n++ {
		rng.Shuffle(len(racers), func(i, j int) { racers[i], racers[j] = racers[j], racers[i] })
		assert.Equal(t, want, racer.TopSpeed(racers))
	}
	slices.Reverse(racers)
	assert.Equal(t, want, racer.TopSpeed(racers))
}

// TestTopSpeed_Homogeneous ranks concrete element types without boxing them into Racer.
func TestTopSpeed_Homogeneous(t *testing.T) {
	swifts := []bird.SwiftBird{bird.NewSwiftBird(4.2), bird.NewSwiftBird(5.0), bird.NewSwiftBird(3.0)}
	assert.InDelta(t, 5000.0, racer.TopSpeed(swifts), 1e-9)

	assert.Equal(t, 7.5, racer.TopSpeed([]fixed{1, 7.5, 3}))
	assert.Equal(t, 9.9, racer.TopSpeed([]bird.UnladenSwallow{bird.European, bird.Unknown}))
}

// TestTopSpeedSeq matches TopSpeed over the same elements, including a reversed view.
func TestTopSpeedSeq(t *testing.T) {
	racers := lineUp()
	assert.Equal(t, racer.TopSpeed(racers), racer.TopSpeedSeq(slices.Values(racers)))

	sub := racers[1:4]
	back := slices.Backward(sub)
	got := racer.TopSpeedSeq[racer.Racer](func(yield func(racer.Racer) bool) {
		for _, r := range back {
			if !yield(r) {
				return
			}
		}
	})
	assert.Equal(t, 42.0, got)
}

// TestFastest returns identity, first racer on ties, false on empty.
func TestFastest(t *testing.T) {
	_, ok := racer.Fastest[racer.Racer](nil)
	assert.False(t, ok)

	w, ok := racer.Fastest(lineUp())
	require.True(t, ok)
	assert.IsType(t, bird.SwiftBird{}, w)

	tied := []fixed{3, 9, 9, 1}
	idx := -1
	f, ok := racer.Fastest(tied)
	require.True(t, ok)
	for i := range tied {
		if tied[i] == f {
			idx = i
			break
		}
	}
	assert.Equal(t, 1, idx)
	assert.Equal(t, racer.TopSpeed(tied), f.Speed())
}

// TestBooster boosts through the interface and re-ranks.
func TestBooster(t *testing.T) {
	s := bird.NewSwiftBird(0.1)
	moto := vehicle.NewMotorcycle("Giacomo")
	assert.Equal(t, 200.0, racer.TopSpeed([]racer.Racer{s, moto}))

	var b racer.Booster = &s
	b.Boost(1000)
	assert.InDelta(t, 200.0, racer.TopSpeed([]racer.Racer{s, moto}), 1e-9, "0.1 × 2000 ties the motorcycle")
	b.Boost(1000)
	assert.InDelta(t, 300.0, racer.TopSpeed([]racer.Racer{s, moto}), 1e-9)
}
