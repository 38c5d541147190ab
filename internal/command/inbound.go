// internal/command/inbound.go
package command

import (
	"errors"
	"log"
)

// ErrQueueFull is returned when the inbound channel has no room.
var ErrQueueFull = errors.New("command queue full")

// Inbound — очередь команд от внешних источников.
// Any number of goroutines may Submit; only the simulation goroutine Drains.
type Inbound struct {
	ch chan Command
}

func NewInbound(size int) *Inbound {
	if size < 1 {
		size = 1
	}
	return &Inbound{ch: make(chan Command, size)}
}

// Submit enqueues cmd without blocking. A full queue drops the command.
func (in *Inbound) Submit(cmd Command) error {
	select {
	case in.ch <- cmd:
		return nil
	default:
		log.Printf("WARN: command queue full, dropping %q", cmd)
		return ErrQueueFull
	}
}

// SubmitLine parses line and enqueues the result. Malformed lines are
// logged and dropped.
func (in *Inbound) SubmitLine(line string) error {
	cmd, err := Parse(line)
	if err != nil {
		if !errors.Is(err, ErrEmpty) {
			log.Printf("Ignoring command %q: %v", line, err)
		}
		return err
	}
	return in.Submit(cmd)
}

// Drain returns every queued command without waiting.
func (in *Inbound) Drain() []Command {
	var cmds []Command
	for {
		select {
		case cmd := <-in.ch:
			cmds = append(cmds, cmd)
		default:
			return cmds
		}
	}
}

func (in *Inbound) Len() int {
	return len(in.ch)
}
