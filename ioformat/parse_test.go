package ioformat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirollos21/mazeroute/ioformat"
	"github.com/kirollos21/mazeroute/point"
)

func TestParse_S1Trivial(t *testing.T) {
	sess, err := ioformat.Parse(strings.NewReader("3,3,5,2\nnet1 (1,0,0) (1,2,0)\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, sess.Width)
	assert.Equal(t, 3, sess.Height)
	assert.EqualValues(t, 5, sess.ViaPenalty)
	assert.EqualValues(t, 2, sess.WrongPenalty)
	require.Len(t, sess.Nets, 1)
	assert.Equal(t, "net1", sess.Nets[0].Name)
	assert.Equal(t, []point.Point{{Layer: 1, X: 0, Y: 0}, {Layer: 1, X: 2, Y: 0}}, sess.Nets[0].Pins)
}

func TestParse_ObstructionsCommentsAndBlankLines(t *testing.T) {
	input := "5,3,5,2\n# a comment\n\nOBS (1,2,1)\nOBS (2,2,1)\nnet1 (1,0,1) (1,4,1)\n"
	sess, err := ioformat.Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []point.Point{{Layer: 1, X: 2, Y: 1}, {Layer: 2, X: 2, Y: 1}}, sess.Obstructions)
	require.Len(t, sess.Nets, 1)
}

func TestParse_MultiPinNet(t *testing.T) {
	sess, err := ioformat.Parse(strings.NewReader("5,5,1,1\nnet1 (1,0,0) (1,4,0) (1,4,4)\n"))
	require.NoError(t, err)
	require.Len(t, sess.Nets, 1)
	assert.Len(t, sess.Nets[0].Pins, 3)
}

func TestParse_MalformedHeader(t *testing.T) {
	_, err := ioformat.Parse(strings.NewReader("not,a,header\nnet1 (1,0,0) (1,1,0)\n"))
	assert.ErrorIs(t, err, ioformat.ErrMalformedHeader)
}

func TestParse_NonPositiveDim(t *testing.T) {
	_, err := ioformat.Parse(strings.NewReader("0,3,1,1\n"))
	assert.ErrorIs(t, err, ioformat.ErrNonPositiveDim)
}

func TestParse_NegativePenalty(t *testing.T) {
	_, err := ioformat.Parse(strings.NewReader("3,3,-1,1\n"))
	assert.ErrorIs(t, err, ioformat.ErrNegativePenalty)
}

func TestParse_OutOfBoundsObstruction(t *testing.T) {
	_, err := ioformat.Parse(strings.NewReader("3,3,1,1\nOBS (1,9,9)\n"))
	assert.ErrorIs(t, err, ioformat.ErrOutOfBounds)
}

func TestParse_OutOfBoundsPin(t *testing.T) {
	_, err := ioformat.Parse(strings.NewReader("3,3,1,1\nnet1 (1,0,0) (1,9,9)\n"))
	assert.ErrorIs(t, err, ioformat.ErrOutOfBounds)
}

func TestParse_TooFewPins(t *testing.T) {
	_, err := ioformat.Parse(strings.NewReader("3,3,1,1\nnet1 (1,0,0)\n"))
	assert.ErrorIs(t, err, point.ErrTooFewPins)
}

func TestParse_DuplicateNetName(t *testing.T) {
	input := "3,3,1,1\nnet1 (1,0,0) (1,2,0)\nnet1 (1,0,1) (1,2,1)\n"
	_, err := ioformat.Parse(strings.NewReader(input))
	assert.ErrorIs(t, err, point.ErrDuplicateNetName)
}

func TestParse_MalformedNetLine(t *testing.T) {
	_, err := ioformat.Parse(strings.NewReader("3,3,1,1\n!!! not a net\n"))
	assert.ErrorIs(t, err, point.ErrTooFewPins)
}
