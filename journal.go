package sndprobe

import (
	"fmt"

	"github.com/hadi77ir/go-ringqueue"

	"github.com/hadi77ir/go-sndprobe/types"
)

// Journal buffers events during a run and hands them out once the send loop
// is over, keeping console output out of the loop.
type Journal struct {
	queue   ringqueue.RingQueue[types.Event]
	dropped int
}

var _ EventSink = &Journal{}

// NewJournal creates a journal that holds up to capacity events.
// Events recorded while it is full are counted and discarded.
func NewJournal(capacity int) (*Journal, error) {
	if capacity < 1 {
		capacity = 1
	}
	queue, err := ringqueue.NewSafe[types.Event](capacity, ringqueue.WhenFullError, ringqueue.WhenEmptyBlock, nil)
	if err != nil {
		return nil, fmt.Errorf("create journal: %w", err)
	}
	return &Journal{queue: queue}, nil
}

// Record buffers ev, or counts it as dropped when the journal is full.
func (j *Journal) Record(ev types.Event) {
	if _, err := j.queue.Push(ev); err != nil {
		j.dropped++
	}
}

// Replay hands every buffered event to sink in the order it was recorded.
func (j *Journal) Replay(sink EventSink) error {
	for j.queue.Len() > 0 {
		ev, _, err := j.queue.Pop()
		if err != nil {
			return err
		}
		sink.Record(ev)
	}
	return nil
}

// Dropped returns the number of events discarded because the journal was full.
func (j *Journal) Dropped() int {
	return j.dropped
}

// Close discards any events not yet replayed.
func (j *Journal) Close() error {
	return j.queue.Close()
}
