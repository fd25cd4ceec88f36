package sndprobe

import "github.com/hadi77ir/go-sndprobe/types"

// EventSink receives one event per send attempt, in sequence order.
// Record is called from the send loop and should return quickly.
type EventSink interface {
	Record(ev types.Event)
}

// SinkFunc adapts a function to an EventSink.
type SinkFunc func(ev types.Event)

func (f SinkFunc) Record(ev types.Event) {
	f(ev)
}

type discardSink struct{}

func (discardSink) Record(types.Event) {}
