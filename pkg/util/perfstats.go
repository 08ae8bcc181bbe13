package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfSample records the time taken, memory allocated and garbage collections
// between two points of a computation.
type PerfSample struct {
	Elapsed time.Duration
	// Memory allocated (in Kb)
	Alloc uint64
	// Number of gc events
	GCs uint32
}

// Fields returns this sample as structured logging fields.
func (s PerfSample) Fields() log.Fields {
	return log.Fields{
		"seconds": s.Elapsed.Seconds(),
		"kb":      s.Alloc,
		"gcs":     s.GCs,
	}
}

// PerfStats measures a computation from the point it was created, and also
// across individual laps (e.g. one generation of a game).
type PerfStats struct {
	start perfPoint
	lap   perfPoint
}

type perfPoint struct {
	time  time.Time
	alloc uint64
	gcs   uint32
}

func now() perfPoint {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return perfPoint{time.Now(), m.TotalAlloc, m.NumGC}
}

func (p perfPoint) until(q perfPoint) PerfSample {
	return PerfSample{q.time.Sub(p.time), (q.alloc - p.alloc) / 1024, q.gcs - p.gcs}
}

// NewPerfStats begins measuring from the current point.
func NewPerfStats() *PerfStats {
	start := now()
	return &PerfStats{start, start}
}

// Total returns the sample since these statistics were created.
func (p *PerfStats) Total() PerfSample {
	return p.start.until(now())
}

// Lap returns the sample since the previous lap (or since creation, for the
// first lap), and begins the next lap.
func (p *PerfStats) Lap() PerfSample {
	end := now()
	sample := p.lap.until(end)
	p.lap = end
	//
	return sample
}

// Log logs (at debug level) the total sample.
func (p *PerfStats) Log(prefix string) {
	log.WithFields(p.Total().Fields()).Debug(prefix)
}

// LogLap logs (at debug level) the sample for the current lap, and begins the
// next.
func (p *PerfStats) LogLap(prefix string) {
	log.WithFields(p.Lap().Fields()).Debug(prefix)
}
