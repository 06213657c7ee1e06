package deal

import (
	"sort"

	"deals-server/models"
)

// Timeline maps each minute of the day to the number of deals active at
// that minute. Minutes covered by no deal are absent. Built fresh per
// request and discarded afterwards.
type Timeline map[models.TimeOfDay]int

func NewTimeline() Timeline {
	return make(Timeline)
}

// Add increments the counter of every minute the window covers, inclusive
// of both ends.
func (tl Timeline) Add(w TimeWindow) {
	for t := w.Start(); t <= w.End(); t++ {
		tl[t]++
	}
}

// Peak scans the timeline in chronological order and returns the earliest
// contiguous run of minutes at the maximum count. A strictly higher count
// starts a new peak; an equal count extends the peak only when the minute
// immediately follows the current peak end, so a gap or a dip breaks
// extension and a later run at the same maximum never wins. Both returns
// are nil for an empty timeline.
func (tl Timeline) Peak() (*models.TimeOfDay, *models.TimeOfDay) {
	times := make([]models.TimeOfDay, 0, len(tl))
	for t := range tl {
		times = append(times, t)
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	maxCount := 0
	var peakStart, peakEnd *models.TimeOfDay

	for _, t := range times {
		count := tl[t]

		if count > maxCount {
			maxCount = count
			start, end := t, t
			peakStart, peakEnd = &start, &end
		} else if count == maxCount && peakEnd != nil && t == peakEnd.AddMinutes(1) {
			end := t
			peakEnd = &end
		}
	}

	return peakStart, peakEnd
}

// PeakWindow computes the same result as building a Timeline and calling
// Peak, but sweeps over window boundaries instead of enumerating minutes:
// +1 at each window start, -1 one minute past each window end, then a walk
// over the sorted boundaries in which the count is constant between
// consecutive boundaries. Zero-count stretches are skipped, matching the
// minutes absent from a Timeline.
func PeakWindow(windows []TimeWindow) (*models.TimeOfDay, *models.TimeOfDay) {
	deltas := make(map[models.TimeOfDay]int, 2*len(windows))
	for _, w := range windows {
		deltas[w.Start()]++
		deltas[w.End().AddMinutes(1)]--
	}

	bounds := make([]models.TimeOfDay, 0, len(deltas))
	for t := range deltas {
		bounds = append(bounds, t)
	}
	sort.Slice(bounds, func(i, j int) bool { return bounds[i] < bounds[j] })

	count := 0
	maxCount := 0
	var peakStart, peakEnd *models.TimeOfDay

	for i := 0; i < len(bounds)-1; i++ {
		count += deltas[bounds[i]]
		if count == 0 {
			continue
		}

		segStart := bounds[i]
		segEnd := bounds[i+1].AddMinutes(-1)

		if count > maxCount {
			maxCount = count
			start, end := segStart, segEnd
			peakStart, peakEnd = &start, &end
		} else if count == maxCount && peakEnd != nil && segStart == peakEnd.AddMinutes(1) {
			end := segEnd
			peakEnd = &end
		}
	}

	return peakStart, peakEnd
}
