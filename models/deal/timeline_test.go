package deal

import (
	"math/rand"
	"testing"

	"deals-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(t *testing.T, startHour, startMin, endHour, endMin int) TimeWindow {
	t.Helper()
	w, err := NewTimeWindow(timeOfDay(startHour, startMin), timeOfDay(endHour, endMin))
	require.NoError(t, err)
	return w
}

func peakOf(t *testing.T, windows []TimeWindow) (string, string) {
	t.Helper()
	start, end := PeakWindow(windows)
	require.NotNil(t, start)
	require.NotNil(t, end)
	return start.String(), end.String()
}

func TestPeakWindow_OverlappingDeals(t *testing.T) {
	// Three overlapping morning deals on one restaurant plus a lone evening
	// deal elsewhere: the peak is the intersection of the three.
	windows := []TimeWindow{
		window(t, 10, 0, 11, 0),
		window(t, 10, 30, 11, 30),
		window(t, 10, 45, 11, 15),
		window(t, 18, 0, 19, 0),
	}

	start, end := peakOf(t, windows)
	assert.Equal(t, "10:45", start)
	assert.Equal(t, "11:00", end)
}

func TestPeakWindow_TieBreak_EarliestRunWins(t *testing.T) {
	// Two disjoint pairs with the same maximal count; the chronologically
	// first run is returned.
	windows := []TimeWindow{
		window(t, 10, 0, 10, 5),
		window(t, 10, 1, 10, 6),
		window(t, 20, 0, 20, 5),
		window(t, 20, 1, 20, 6),
	}

	start, end := peakOf(t, windows)
	assert.Equal(t, "10:01", start)
	assert.Equal(t, "10:05", end)
}

func TestPeakWindow_SingleWindow(t *testing.T) {
	start, end := peakOf(t, []TimeWindow{window(t, 9, 0, 17, 0)})
	assert.Equal(t, "09:00", start)
	assert.Equal(t, "17:00", end)
}

func TestPeakWindow_GapDoesNotExtend(t *testing.T) {
	// Equal count after a gap must not extend the earlier peak.
	windows := []TimeWindow{
		window(t, 10, 0, 10, 0),
		window(t, 10, 5, 10, 6),
	}

	start, end := peakOf(t, windows)
	assert.Equal(t, "10:00", start)
	assert.Equal(t, "10:00", end)
}

func TestPeakWindow_DipBreaksExtension(t *testing.T) {
	// Count 2 at [10:00,10:10], dips to 1, back to 2 at [10:20,10:30]: the
	// first run at the maximum stays the answer.
	windows := []TimeWindow{
		window(t, 10, 0, 10, 30),
		window(t, 10, 0, 10, 10),
		window(t, 10, 20, 10, 30),
	}

	start, end := peakOf(t, windows)
	assert.Equal(t, "10:00", start)
	assert.Equal(t, "10:10", end)
}

func TestPeakWindow_Empty(t *testing.T) {
	start, end := PeakWindow(nil)
	assert.Nil(t, start)
	assert.Nil(t, end)
}

func TestTimeline_AddAndPeak(t *testing.T) {
	timeline := NewTimeline()
	timeline.Add(window(t, 10, 0, 10, 2))
	timeline.Add(window(t, 10, 1, 10, 3))

	assert.Equal(t, 1, timeline[models.FromClock(10, 0)])
	assert.Equal(t, 2, timeline[models.FromClock(10, 1)])
	assert.Equal(t, 2, timeline[models.FromClock(10, 2)])
	assert.Equal(t, 1, timeline[models.FromClock(10, 3)])

	start, end := timeline.Peak()
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, "10:01", start.String())
	assert.Equal(t, "10:02", end.String())
}

func TestTimeline_Peak_Empty(t *testing.T) {
	start, end := NewTimeline().Peak()
	assert.Nil(t, start)
	assert.Nil(t, end)
}

// TestPeakWindow_MatchesTimelineEnumeration feeds both implementations the
// same randomized interval sets: the boundary sweep must agree with the
// minute-by-minute enumeration on every peak, including ties.
func TestPeakWindow_MatchesTimelineEnumeration(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 300; i++ {
		n := rng.Intn(20)
		windows := make([]TimeWindow, 0, n)
		timeline := NewTimeline()

		for j := 0; j < n; j++ {
			start := models.TimeOfDay(rng.Intn(models.MINUTES_PER_DAY))
			length := rng.Intn(models.MINUTES_PER_DAY - int(start))
			end := start.AddMinutes(length)

			w, err := NewTimeWindow(&start, &end)
			require.NoError(t, err)
			windows = append(windows, w)
			timeline.Add(w)
		}

		wantStart, wantEnd := timeline.Peak()
		gotStart, gotEnd := PeakWindow(windows)

		if wantStart == nil {
			assert.Nil(t, gotStart, "iteration %d", i)
			assert.Nil(t, gotEnd, "iteration %d", i)
			continue
		}

		require.NotNil(t, gotStart, "iteration %d", i)
		require.NotNil(t, gotEnd, "iteration %d", i)
		assert.Equal(t, *wantStart, *gotStart, "iteration %d: peak start", i)
		assert.Equal(t, *wantEnd, *gotEnd, "iteration %d: peak end", i)
	}
}
