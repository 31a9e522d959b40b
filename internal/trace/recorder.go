package trace

import (
	"fmt"
	"io"
	"sync"
)

// Recorder keeps the last N events of a run in memory. Nothing is written
// until Dump; fern dumps the recorder when a command fails or panics, so a
// passing run leaves the trace output empty.
type Recorder struct {
	mu      sync.Mutex
	buf     []Event
	next    int
	wrapped bool
	dropped uint64
	level   Level
	out     io.Writer
	format  Format
}

var _ Dumper = (*Recorder)(nil)

func NewRecorder(size int, level Level, out io.Writer, format Format) *Recorder {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &Recorder{buf: make([]Event, size), level: level, out: out, format: format}
}

func (r *Recorder) Emit(ev *Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.wrapped {
		r.dropped++
	}
	r.buf[r.next] = *ev
	r.next++
	if r.next == len(r.buf) {
		r.next = 0
		r.wrapped = true
	}
}

func (r *Recorder) Level() Level { return r.level }

// Events returns the retained events, oldest first.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.wrapped {
		return append([]Event(nil), r.buf[:r.next]...)
	}
	out := make([]Event, 0, len(r.buf))
	out = append(out, r.buf[r.next:]...)
	return append(out, r.buf[:r.next]...)
}

// Dump writes the retained events to the output, preceded by a note when
// older events were overwritten.
func (r *Recorder) Dump() error {
	events := r.Events()
	r.mu.Lock()
	dropped := r.dropped
	r.mu.Unlock()

	if dropped > 0 && r.format == FormatText {
		if _, err := fmt.Fprintf(r.out, "... %d earlier events dropped\n", dropped); err != nil {
			return err
		}
	}
	for i := range events {
		if _, err := r.out.Write(FormatEvent(&events[i], r.format)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Recorder) Close() error {
	return closeOutput(r.out)
}
