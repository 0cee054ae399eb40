package pose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject(t *testing.T) {
	t.Parallel()

	frame := StaticFrame{
		Points: []Landmark{
			{Joint: "shoulder_left", X: 120, Y: 80},
			{Joint: "hip_left", X: 100, Y: 200},
			{Joint: "hip_right", X: 140, Y: 210},
		},
		Width:   640,
		Height:  480,
		OriginX: 20,
		OriginY: 40,
	}
	relevant := map[string]bool{"hip_left": true, "hip_right": true}

	t.Run("vertical axis uses Y translated and scaled", func(t *testing.T) {
		t.Parallel()
		v, ok := Project(frame, relevant, Vertical)
		assert.True(t, ok)
		// First relevant landmark is hip_left: (200-40)/640.
		assert.InDelta(t, 0.25, v, 1e-12)
	})

	t.Run("horizontal axis uses X", func(t *testing.T) {
		t.Parallel()
		v, ok := Project(frame, relevant, Horizontal)
		assert.True(t, ok)
		assert.InDelta(t, 0.125, v, 1e-12)
	})

	t.Run("first matching landmark wins", func(t *testing.T) {
		t.Parallel()
		v, ok := Project(frame, map[string]bool{"hip_right": true}, Vertical)
		assert.True(t, ok)
		assert.InDelta(t, (210.0-40.0)/640.0, v, 1e-12)
	})

	t.Run("missing joint is no sample this tick", func(t *testing.T) {
		t.Parallel()
		_, ok := Project(frame, map[string]bool{"ankle_left": true}, Vertical)
		assert.False(t, ok)
	})

	t.Run("empty frame is no sample this tick", func(t *testing.T) {
		t.Parallel()
		_, ok := Project(StaticFrame{}, relevant, Vertical)
		assert.False(t, ok)
	})

	t.Run("degenerate bounding size falls back to unit scale", func(t *testing.T) {
		t.Parallel()
		tiny := StaticFrame{
			Points: []Landmark{{Joint: "hip_left", X: 0.5, Y: 0.75}},
		}
		v, ok := Project(tiny, relevant, Vertical)
		assert.True(t, ok)
		assert.InDelta(t, 0.75, v, 1e-12)
	})

	t.Run("larger dimension is the scale", func(t *testing.T) {
		t.Parallel()
		tall := StaticFrame{
			Points: []Landmark{{Joint: "hip_left", X: 10, Y: 500}},
			Width:  480,
			Height: 1000,
		}
		v, ok := Project(tall, relevant, Vertical)
		assert.True(t, ok)
		assert.InDelta(t, 0.5, v, 1e-12)
	})
}

func TestAxisString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "horizontal", Horizontal.String())
	assert.Equal(t, "vertical", Vertical.String())
}
