package debugui

import (
	"testing"

	"github.com/plus3/handtris/engine"
	"github.com/stretchr/testify/assert"
)

func TestPerformanceStatsHistory(t *testing.T) {
	ps := NewPerformanceStats(4, nil, nil)
	assert.Zero(t, ps.average())

	ps.record(0.010)
	ps.record(0.030)
	assert.InDelta(t, 10.0, ps.average(), 0.001)

	for range 4 {
		ps.record(0.016)
	}
	assert.InDelta(t, 16.0, ps.average(), 0.001)
	assert.Equal(t, 2, ps.frameIndex)
}

func TestImguiSystemAdd(t *testing.T) {
	sys := NewImguiSystem()
	calls := 0
	sys.Add(func(*engine.UpdateFrame) { calls++ })
	sys.Add(func(*engine.UpdateFrame) { calls++ })

	assert.Len(t, sys.Items, 2)
	for _, item := range sys.Items {
		item.Render(nil)
	}
	assert.Equal(t, 2, calls)
	assert.NotNil(t, sys.InputState)
}
