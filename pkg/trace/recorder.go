package trace

import (
	"github.com/tidwall/btree"
)

const recorderDegree = 32

// Recorder keeps every emitted event in memory, ordered by arrival.
type Recorder struct {
	seq    uint64
	events *btree.Map[uint64, Event]
}

func NewRecorder() *Recorder {
	return &Recorder{
		events: btree.NewMap[uint64, Event](recorderDegree),
	}
}

func (r *Recorder) Emit(event Event) {
	r.seq++
	r.events.Set(r.seq, event)
}

// Seq returns the sequence number of the last recorded event, 0 if none.
func (r *Recorder) Seq() uint64 {
	return r.seq
}

func (r *Recorder) Len() int {
	return r.events.Len()
}

func (r *Recorder) Events() []Event {
	return r.Since(0)
}

// Since returns the events recorded after seq.
func (r *Recorder) Since(seq uint64) []Event {
	events := make([]Event, 0, r.events.Len())
	r.events.Ascend(seq+1, func(_ uint64, event Event) bool {
		events = append(events, event)
		return true
	})
	return events
}

func (r *Recorder) Kinds() []Kind {
	events := r.Events()
	kinds := make([]Kind, 0, len(events))
	for _, event := range events {
		kinds = append(kinds, event.Kind)
	}
	return kinds
}

// Reactions returns the sources of reaction events, in order.
func (r *Recorder) Reactions() []string {
	var sources []string
	for _, event := range r.Events() {
		if event.Kind == KindReaction {
			sources = append(sources, event.Source)
		}
	}
	return sources
}

func (r *Recorder) Reset() {
	r.seq = 0
	r.events = btree.NewMap[uint64, Event](recorderDegree)
}
