package utils

import "time"

type Metric struct {
	DatabaseRead  chan float64
	DatabaseWrite chan float64
}

func NewMetric() *Metric {
	return &Metric{
		DatabaseRead:  make(chan float64, 16),
		DatabaseWrite: make(chan float64, 16),
	}
}

// Non-blocking sends; dropping a sample beats stalling a request when the
// metric collector isn't running (tests, shutdown).

func (m *Metric) ObserveDatabaseRead(d time.Duration) {
	select {
	case m.DatabaseRead <- float64(d.Microseconds()):
	default:
	}
}

func (m *Metric) ObserveDatabaseWrite(d time.Duration) {
	select {
	case m.DatabaseWrite <- float64(d.Microseconds()):
	default:
	}
}
