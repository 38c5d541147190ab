// internal/command/dispatcher.go
package command

import (
	"log"

	"go-hex-defense/internal/component"
	"go-hex-defense/pkg/hexmap"
)

// Handler executes decoded commands against the simulation.
type Handler interface {
	ToggleTile(hex hexmap.Hex)
	PlaceTower(towerType component.TowerType, hex hexmap.Hex)
	Restart()
}

// Dispatcher drains the inbound queue once per tick.
type Dispatcher struct {
	inbound *Inbound
	handler Handler
}

func NewDispatcher(inbound *Inbound, handler Handler) *Dispatcher {
	return &Dispatcher{inbound: inbound, handler: handler}
}

// Dispatch routes every queued command to the handler and returns how many
// were executed. A Restart ends the batch: the rest of the drained commands
// are discarded.
func (d *Dispatcher) Dispatch() (n int, restart bool) {
	cmds := d.inbound.Drain()
	for i, cmd := range cmds {
		n++
		switch cmd.Kind {
		case ToggleTile:
			d.handler.ToggleTile(cmd.Hex)
		case PlaceTower:
			d.handler.PlaceTower(cmd.Tower, cmd.Hex)
		case Restart:
			if rest := len(cmds) - i - 1; rest > 0 {
				log.Printf("Restart requested, discarding %d queued commands", rest)
			}
			d.handler.Restart()
			return n, true
		}
	}
	return n, false
}
