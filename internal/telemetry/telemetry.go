// Package telemetry provides a JSONL event stream for recording what a user
// does in an astronexus session. Section views, catalog queries, detail opens,
// comparisons, mission simulations and mentor answers are each recorded as a
// structured JSON event, and can be tallied into Prometheus counters.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Event kinds identify the type of telemetry event.
const (
	KindSessionStart = "session_start"
	KindSessionDone  = "session_done"
	KindSectionView  = "section_view"
	KindQuery        = "query"
	KindDetailOpen   = "detail_open"
	KindComparison   = "comparison"
	KindSimulation   = "simulation"
	KindMentorAnswer = "mentor_answer"
)

// Event represents a single telemetry record. Each event carries a timestamp,
// a kind tag, and optional context identifiers (section, dataset) along with
// arbitrary structured data.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	Section   string    `json:"section,omitempty"`
	Dataset   string    `json:"dataset,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// QueryData is the payload of a KindQuery event.
type QueryData struct {
	Search   string `json:"search,omitempty"`
	Category string `json:"category,omitempty"`
	Sort     string `json:"sort,omitempty"`
	Results  int    `json:"results"`
}

// SimulationData is the payload of a KindSimulation event.
type SimulationData struct {
	Probability float64 `json:"probability"`
	Success     bool    `json:"success"`
}

// Emitter writes telemetry events to a JSONL file. It is safe for concurrent
// use by multiple goroutines. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	file *os.File
	enc  *json.Encoder
	mu   sync.Mutex
}

// NewEmitter creates a new Emitter that writes JSONL events to the file at
// path. The file is created if it does not exist, or appended to if it does.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{
		file: f,
		enc:  json.NewEncoder(f),
	}, nil
}

// Emit writes a single event to the JSONL file. It is safe for concurrent use.
// Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file. Calling Close on a nil
// Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}

// Recorder fans an event out to an Emitter and a Metrics set. Either may be
// nil, and a nil *Recorder records nothing.
type Recorder struct {
	Emitter *Emitter
	Metrics *Metrics
	Now     func() time.Time
}

// Record stamps evt when it has no timestamp, counts it, and appends it to
// the event stream.
func (r *Recorder) Record(evt Event) error {
	if r == nil {
		return nil
	}
	if evt.Timestamp.IsZero() {
		now := time.Now
		if r.Now != nil {
			now = r.Now
		}
		evt.Timestamp = now().UTC()
	}
	r.Metrics.Observe(evt)
	return r.Emitter.Emit(evt)
}
