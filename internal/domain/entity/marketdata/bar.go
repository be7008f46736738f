package marketdata

import "time"

// Resolution is the bar granularity requested from the data provider.
type Resolution int

const (
	ResolutionDay Resolution = iota
	ResolutionHour
	ResolutionQuarterHour
	ResolutionMinute
)

// Bar represents a single OHLCV record for an underlying symbol.
// Bars carry no identity beyond their timestamp within a requested series.
type Bar struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    int64     `json:"volume"`
}
