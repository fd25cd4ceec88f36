package types

import "fmt"

type Outcome uint8

const (
	OutcomeSent Outcome = iota
	OutcomeWouldBlock
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSent:
		return "sent"
	case OutcomeWouldBlock:
		return "would-block"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("invalid outcome: %d", o)
	}
}

// Event describes a single send attempt.
type Event struct {
	Seq     uint32
	Outcome Outcome
	// Bytes is the number of bytes handed to the kernel. Zero unless Outcome is OutcomeSent.
	Bytes int
	Err   error
}
