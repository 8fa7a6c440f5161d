package grid_test

import (
	"testing"

	"github.com/kirollos21/mazeroute/grid"
	"github.com/kirollos21/mazeroute/point"
	"github.com/stretchr/testify/assert"
)

// TestNew_Errors verifies New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative width", -1, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.width, tc.height)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, grid.ErrNonPositiveDim)
		})
	}
}

// TestInBounds checks layer, x, and y boundaries on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New(3, 2)
	assert.NoError(t, err)

	valid := []point.Point{
		{Layer: 1, X: 0, Y: 0},
		{Layer: 2, X: 2, Y: 1},
	}
	for _, p := range valid {
		assert.Truef(t, g.InBounds(p), "InBounds(%v) should be true", p)
	}

	invalid := []point.Point{
		{Layer: 0, X: 0, Y: 0},
		{Layer: 3, X: 0, Y: 0},
		{Layer: 1, X: -1, Y: 0},
		{Layer: 1, X: 3, Y: 0},
		{Layer: 1, X: 0, Y: 2},
	}
	for _, p := range invalid {
		assert.Falsef(t, g.InBounds(p), "InBounds(%v) should be false", p)
	}
}

// TestIsBlocked_OutOfBounds verifies out-of-bounds cells always report
// blocked, regardless of any prior Block calls.
func TestIsBlocked_OutOfBounds(t *testing.T) {
	g, _ := grid.New(2, 2)
	assert.True(t, g.IsBlocked(point.Point{Layer: 1, X: 5, Y: 5}))
}

// TestBlock_MonotoneAndLayerIndependent verifies Block marks only the
// exact (layer, x, y) cell and leaves the other layer untouched.
func TestBlock_MonotoneAndLayerIndependent(t *testing.T) {
	g, _ := grid.New(2, 2)
	p := point.Point{Layer: 1, X: 1, Y: 1}

	assert.False(t, g.IsBlocked(p))
	g.Block(p)
	assert.True(t, g.IsBlocked(p))

	other := point.Point{Layer: 2, X: 1, Y: 1}
	assert.False(t, g.IsBlocked(other))

	// Blocking again is idempotent; there is no unblock operation.
	g.Block(p)
	assert.True(t, g.IsBlocked(p))
}

// TestBlock_OutOfBoundsNoop verifies Block silently ignores points
// outside the grid rather than panicking.
func TestBlock_OutOfBoundsNoop(t *testing.T) {
	g, _ := grid.New(2, 2)
	assert.NotPanics(t, func() {
		g.Block(point.Point{Layer: 1, X: 99, Y: 99})
	})
}
