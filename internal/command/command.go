// internal/command/command.go
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go-hex-defense/internal/component"
	"go-hex-defense/pkg/hexmap"
)

// Kind — вид внешней команды
type Kind int

const (
	Restart Kind = iota
	ToggleTile
	PlaceTower
)

func (k Kind) String() string {
	switch k {
	case Restart:
		return "reset"
	case ToggleTile:
		return "toggle"
	case PlaceTower:
		return "tower"
	}
	return "unknown"
}

var (
	ErrEmpty          = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrArity          = errors.New("wrong number of arguments")
	ErrCoordinates    = errors.New("bad coordinates")
	ErrTowerType      = errors.New("unknown tower type")
)

// Command is one decoded external instruction.
type Command struct {
	Kind  Kind
	Hex   hexmap.Hex
	Tower component.TowerType
}

func (c Command) String() string {
	switch c.Kind {
	case ToggleTile:
		return fmt.Sprintf("toggle %d,%d", c.Hex.Q, c.Hex.R)
	case PlaceTower:
		return fmt.Sprintf("tower %d,%d %s", c.Hex.Q, c.Hex.R, c.Tower.Letter())
	}
	return c.Kind.String()
}

// Parse decodes one line of the command grammar:
//
//	reset
//	toggle x,y
//	tower x,y {s|m|l}
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmpty
	}

	switch fields[0] {
	case "reset":
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("reset: %w", ErrArity)
		}
		return Command{Kind: Restart}, nil

	case "toggle":
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("toggle: %w", ErrArity)
		}
		hex, err := parseHex(fields[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: ToggleTile, Hex: hex}, nil

	case "tower":
		if len(fields) != 3 {
			return Command{}, fmt.Errorf("tower: %w", ErrArity)
		}
		hex, err := parseHex(fields[1])
		if err != nil {
			return Command{}, err
		}
		towerType, ok := component.ParseTowerType(fields[2])
		if !ok {
			return Command{}, fmt.Errorf("%w %q", ErrTowerType, fields[2])
		}
		return Command{Kind: PlaceTower, Hex: hex, Tower: towerType}, nil
	}
	return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, fields[0])
}

func parseHex(token string) (hexmap.Hex, error) {
	xs, ys, ok := strings.Cut(token, ",")
	if !ok {
		return hexmap.Hex{}, fmt.Errorf("%w %q", ErrCoordinates, token)
	}
	q, err := strconv.Atoi(xs)
	if err != nil {
		return hexmap.Hex{}, fmt.Errorf("%w %q", ErrCoordinates, token)
	}
	r, err := strconv.Atoi(ys)
	if err != nil {
		return hexmap.Hex{}, fmt.Errorf("%w %q", ErrCoordinates, token)
	}
	return hexmap.Hex{Q: q, R: r}, nil
}
