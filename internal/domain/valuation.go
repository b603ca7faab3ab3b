package domain

// IntradaySample is one observed price for a security. Timestamp is an
// opaque sortable key ("YYYY-MM-DD HH:MM" on the wire); nothing below the
// transport layer parses it.
type IntradaySample struct {
	Timestamp string
	Price     float64
}

// IntradaySeries is a security's chronological intraday samples. May be
// empty, and may be missing timestamps that other securities have.
type IntradaySeries []IntradaySample

// ValuationPoint is the fund's estimated cumulative return, in percent,
// at one timestamp of the canonical timeline.
type ValuationPoint struct {
	Timestamp string
	Value     float64
}

// ValuationStats summarizes a valuation series. MaxTime/MinTime hold the
// timestamp of the first occurrence of the extremum.
type ValuationStats struct {
	Current float64
	Max     float64
	Min     float64
	MaxTime string
	MinTime string
}
