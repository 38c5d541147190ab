package command

import (
	"sync"
	"testing"

	"go-hex-defense/internal/component"
	"go-hex-defense/pkg/hexmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"reset", Command{Kind: Restart}},
		{"  reset  ", Command{Kind: Restart}},
		{"toggle 3,-2", Command{Kind: ToggleTile, Hex: hexmap.Hex{Q: 3, R: -2}}},
		{"toggle 99999,99999", Command{Kind: ToggleTile, Hex: hexmap.Hex{Q: 99999, R: 99999}}},
		{"tower 0,0 s", Command{Kind: PlaceTower, Tower: component.Small}},
		{"tower -1,2 m", Command{Kind: PlaceTower, Hex: hexmap.Hex{Q: -1, R: 2}, Tower: component.Medium}},
		{"tower 4,4 l", Command{Kind: PlaceTower, Hex: hexmap.Hex{Q: 4, R: 4}, Tower: component.Large}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"", ErrEmpty},
		{"   ", ErrEmpty},
		{"jump 1,1", ErrUnknownCommand},
		{"reset now", ErrArity},
		{"toggle", ErrArity},
		{"toggle 1,1 2,2", ErrArity},
		{"toggle 1;1", ErrCoordinates},
		{"toggle a,1", ErrCoordinates},
		{"toggle 1,", ErrCoordinates},
		{"tower 1,1", ErrArity},
		{"tower 1,1 x", ErrTowerType},
		{"tower x,1 s", ErrCoordinates},
	}
	for _, tt := range tests {
		_, err := Parse(tt.line)
		assert.ErrorIs(t, err, tt.want, tt.line)
	}
}

func TestCommandStringRoundTrip(t *testing.T) {
	for _, line := range []string{"reset", "toggle -3,7", "tower 2,-1 m"} {
		cmd, err := Parse(line)
		require.NoError(t, err)
		assert.Equal(t, line, cmd.String())
	}
}

func TestInboundNeverBlocks(t *testing.T) {
	in := NewInbound(2)
	require.NoError(t, in.Submit(Command{Kind: Restart}))
	require.NoError(t, in.SubmitLine("toggle 1,1"))
	assert.ErrorIs(t, in.SubmitLine("toggle 2,2"), ErrQueueFull)
	assert.ErrorIs(t, in.SubmitLine("bogus"), ErrUnknownCommand)

	cmds := in.Drain()
	require.Len(t, cmds, 2)
	assert.Equal(t, Restart, cmds[0].Kind)
	assert.Equal(t, ToggleTile, cmds[1].Kind)
	assert.Empty(t, in.Drain())
}

func TestInboundConcurrentProducers(t *testing.T) {
	in := NewInbound(100)
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				_ = in.Submit(Command{Kind: ToggleTile})
			}
		}()
	}
	wg.Wait()
	assert.Len(t, in.Drain(), 100)
}

type recordingHandler struct {
	calls []string
}

func (h *recordingHandler) ToggleTile(hex hexmap.Hex) {
	h.calls = append(h.calls, Command{Kind: ToggleTile, Hex: hex}.String())
}

func (h *recordingHandler) PlaceTower(towerType component.TowerType, hex hexmap.Hex) {
	h.calls = append(h.calls, Command{Kind: PlaceTower, Hex: hex, Tower: towerType}.String())
}

func (h *recordingHandler) Restart() {
	h.calls = append(h.calls, "reset")
}

func TestDispatchRoutesInOrder(t *testing.T) {
	in := NewInbound(8)
	h := &recordingHandler{}
	d := NewDispatcher(in, h)

	n, restart := d.Dispatch()
	assert.Zero(t, n)
	assert.False(t, restart)

	for _, line := range []string{"toggle 1,0", "tower 0,1 l"} {
		require.NoError(t, in.SubmitLine(line))
	}
	n, restart = d.Dispatch()
	assert.Equal(t, 2, n)
	assert.False(t, restart)
	assert.Equal(t, []string{"toggle 1,0", "tower 0,1 l"}, h.calls)
}

func TestDispatchStopsAtRestart(t *testing.T) {
	in := NewInbound(8)
	h := &recordingHandler{}
	d := NewDispatcher(in, h)
	for _, line := range []string{"toggle 1,0", "reset", "toggle 2,0", "tower 0,1 s"} {
		require.NoError(t, in.SubmitLine(line))
	}

	n, restart := d.Dispatch()
	assert.True(t, restart)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"toggle 1,0", "reset"}, h.calls)
	assert.Zero(t, in.Len(), "commands after reset are discarded")
}
