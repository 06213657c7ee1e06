// models/peak_time_window_response.go
package models

// PeakTimeWindowResponse carries the peak window bounds in "HH:mm" form.
// Both fields are null when the feed holds no deals at all.
type PeakTimeWindowResponse struct {
	PeakTimeStart *TimeOfDay `json:"peakTimeStart"`
	PeakTimeEnd   *TimeOfDay `json:"peakTimeEnd"`
}
