package dropdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/dropdown"
)

func newGroupOf(t *testing.T, n int) (*dropdown.Screen, *dropdown.Group, []*dropdown.Control) {
	t.Helper()
	scr := dropdown.NewScreen()
	g := dropdown.NewGroup(scr)
	controls := make([]*dropdown.Control, n)
	for i := range controls {
		controls[i] = dropdown.New(scr, dropdown.WithGroup(g), dropdown.WithPos(10, float32(10+40*i)))
	}
	return scr, g, controls
}

func TestGroupFirstMemberFocused(t *testing.T) {
	_, g, cs := newGroupOf(t, 3)
	assert.Equal(t, 3, g.Len())
	assert.True(t, g.IsFocused(cs[0]))
	assert.Equal(t, g, cs[0].Group())
}

func TestGroupFocusWraps(t *testing.T) {
	_, g, cs := newGroupOf(t, 3)

	g.FocusNext()
	g.FocusNext()
	assert.True(t, g.IsFocused(cs[2]))
	g.FocusNext()
	assert.True(t, g.IsFocused(cs[0]))
	g.FocusPrev()
	assert.True(t, g.IsFocused(cs[2]))

	g.Focus(cs[1])
	assert.True(t, g.IsFocused(cs[1]))
}

func TestGroupRemoveFocused(t *testing.T) {
	_, g, cs := newGroupOf(t, 3)
	g.Focus(cs[1])

	g.Remove(cs[1])
	assert.Equal(t, 2, g.Len())
	assert.Nil(t, cs[1].Group())
	assert.True(t, g.IsFocused(cs[2]), "the next member takes focus")

	g.Remove(cs[0])
	assert.True(t, g.IsFocused(cs[2]))
}

func TestGroupAddIgnoresMember(t *testing.T) {
	_, g, cs := newGroupOf(t, 2)

	g.Add(cs[0])
	assert.Equal(t, 2, g.Len())
	g.FocusNext()
	g.FocusNext()
	assert.True(t, g.IsFocused(cs[0]))
}

func TestGroupRemoveFocusedCancelsOverlay(t *testing.T) {
	_, g, cs := newGroupOf(t, 2)
	require.NoError(t, g.SendKey(dropdown.KeyDown))
	require.NoError(t, g.SendKey(dropdown.KeyDown))
	require.True(t, cs[0].IsOpen())

	g.Remove(cs[0])
	assert.False(t, cs[0].IsOpen())
	assert.Equal(t, 0, cs[0].Selected())
	assert.True(t, g.IsFocused(cs[1]))
	assert.False(t, cs[1].IsOpen())
}

func TestGroupEncoderTurnMovesFocus(t *testing.T) {
	_, g, cs := newGroupOf(t, 3)

	require.NoError(t, g.Turn(2))
	assert.True(t, g.IsFocused(cs[2]))
	require.NoError(t, g.Turn(-1))
	assert.True(t, g.IsFocused(cs[1]))
	assert.False(t, cs[1].IsOpen())
}

func TestGroupFocusMoveLeavesEditing(t *testing.T) {
	_, g, cs := newGroupOf(t, 2)

	require.NoError(t, g.Release())
	require.True(t, g.Editing())
	require.True(t, cs[0].IsOpen())

	g.FocusNext()
	assert.False(t, g.Editing())
	assert.False(t, cs[0].IsOpen())
	assert.False(t, cs[1].IsOpen())
}

func TestGroupShiftTabFromInput(t *testing.T) {
	scr, g, cs := newGroupOf(t, 3)
	scr.SetInputGroup(g)
	in := dropdown.NewInputState()

	in.ModShift = true
	in.SetKey(dropdown.KeyTab, true)
	scr.Update(in)
	assert.True(t, g.IsFocused(cs[2]))

	in.Reset()
	in.SetKey(dropdown.KeyTab, false)
	in.ModShift = false
	in.SetKey(dropdown.KeyTab, true)
	scr.Update(in)
	assert.True(t, g.IsFocused(cs[0]))
}

func TestGroupPointerPressFocuses(t *testing.T) {
	scr, g, cs := newGroupOf(t, 3)
	p := newPointer(t, scr)

	p.click(20, 95)
	assert.True(t, g.IsFocused(cs[2]))
	assert.True(t, cs[2].IsOpen())
}

func TestEmptyGroup(t *testing.T) {
	scr := dropdown.NewScreen()
	g := dropdown.NewGroup(scr)

	assert.Nil(t, g.Focused())
	g.FocusNext()
	g.FocusPrev()
	assert.NoError(t, g.SendKey(dropdown.KeyDown))
	assert.NoError(t, g.Turn(1))
	assert.NoError(t, g.Press())
	assert.NoError(t, g.Release())
	assert.False(t, g.Editing())
}
