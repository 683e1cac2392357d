package dropdown_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/dropdown"
)

func newStore(t *testing.T, text string) *dropdown.OptionStore {
	t.Helper()
	s := dropdown.NewOptionStore(nil, nil)
	require.NoError(t, s.SetOptions(text))
	return s
}

func TestOptionCountMatchesDelimiters(t *testing.T) {
	for _, text := range []string{"A", "A\nB", "A\nB\nC", "\n", "x\n\ny", "Option 1\nOption 2\nOption 3\n"} {
		s := newStore(t, text)
		assert.Equal(t, strings.Count(text, "\n")+1, s.Count(), "text %q", text)

		st := dropdown.NewOptionStore(nil, nil)
		st.SetOptionsStatic(text)
		assert.Equal(t, s.Count(), st.Count(), "static text %q", text)
	}
}

func TestAddOptionAppend(t *testing.T) {
	s := newStore(t, "A\nB\nC")
	require.NoError(t, s.AddOption("D", dropdown.PosLast))

	assert.Equal(t, "A\nB\nC\nD", s.Text())
	assert.Equal(t, 4, s.Count())
}

func TestAddOptionAppendPreservesOrder(t *testing.T) {
	s := newStore(t, "one")
	want := []string{"one"}
	for _, opt := range []string{"two", "three", "four", "five"} {
		before := s.Count()
		require.NoError(t, s.AddOption(opt, dropdown.PosLast))
		want = append(want, opt)

		assert.Equal(t, before+1, s.Count())
		for i, w := range want {
			got, ok := s.Option(i)
			require.True(t, ok)
			assert.Equal(t, w, got)
		}
	}
}

func TestAddOptionPositions(t *testing.T) {
	tests := []struct {
		name string
		text string
		opt  string
		pos  int
		want string
	}{
		{"front", "A\nC", "X", 0, "X\nA\nC"},
		{"middle", "A\nC", "B", 1, "A\nB\nC"},
		{"at count", "A\nC", "D", 2, "A\nC\nD"},
		{"past count", "A\nC", "D", 7, "A\nC\nD"},
		{"last", "A\nC", "D", dropdown.PosLast, "A\nC\nD"},
		{"empty option", "A\nC", "", 1, "A\n\nC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t, tt.text)
			require.NoError(t, s.AddOption(tt.opt, tt.pos))
			assert.Equal(t, tt.want, s.Text())
			assert.Equal(t, strings.Count(tt.want, "\n")+1, s.Count())
		})
	}
}

func TestAddOptionToEmptyStore(t *testing.T) {
	s := dropdown.NewOptionStore(nil, nil)
	require.NoError(t, s.AddOption("D", dropdown.PosLast))
	assert.Equal(t, "D", s.Text())
	assert.Equal(t, 1, s.Count())

	s.Clear()
	require.NoError(t, s.AddOption("E", 0))
	assert.Equal(t, "E", s.Text())
	assert.Equal(t, 1, s.Count())
}

func TestAddOptionCopiesStaticText(t *testing.T) {
	s := dropdown.NewOptionStore(nil, nil)
	s.SetOptionsStatic("A\nB")
	assert.False(t, s.Owned())

	require.NoError(t, s.AddOption("C", dropdown.PosLast))
	assert.True(t, s.Owned())
	assert.Equal(t, "A\nB\nC", s.Text())
}

func TestAddOptionRejectsNegativePosition(t *testing.T) {
	s := newStore(t, "A")
	err := s.AddOption("B", -1)
	assert.ErrorIs(t, err, dropdown.ErrInvalidIndex)
	assert.Equal(t, "A", s.Text())
}

func TestSetSelectedClamps(t *testing.T) {
	s := newStore(t, "A\nB\nC")

	changed, err := s.SetSelected(5)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 2, s.Selected())
	assert.Equal(t, 2, s.Pending())
	assert.Equal(t, "C", s.SelectedString())

	changed, err = s.SetSelected(2)
	require.NoError(t, err)
	assert.False(t, changed, "unchanged selection is a no-op")
}

func TestSetSelectedRejectsNegative(t *testing.T) {
	s := newStore(t, "A\nB\nC")
	_, err := s.SetSelected(-1)
	assert.ErrorIs(t, err, dropdown.ErrInvalidIndex)
	assert.Equal(t, 0, s.Selected())
}

func TestSetOptionsResetsSelection(t *testing.T) {
	s := newStore(t, "A\nB\nC")
	_, err := s.SetSelected(2)
	require.NoError(t, err)

	require.NoError(t, s.SetOptions("X\nY"))
	assert.Equal(t, 0, s.Selected())
	assert.Equal(t, 0, s.Pending())

	s.SetPending(1)
	s.SetOptionsStatic("P\nQ")
	assert.Equal(t, 0, s.Pending())
}

func TestSelectedTextTruncates(t *testing.T) {
	s := newStore(t, "Apple\nBanana")
	_, err := s.SetSelected(1)
	require.NoError(t, err)

	buf := make([]byte, 2)
	n, err := s.SelectedText(buf)
	assert.ErrorIs(t, err, dropdown.ErrTruncated)
	assert.Equal(t, 1, n)
	assert.Equal(t, []byte{'B', 0}, buf)

	buf = make([]byte, 16)
	n, err = s.SelectedText(buf)
	require.NoError(t, err)
	assert.Equal(t, "Banana", string(buf[:n]))
	assert.Equal(t, byte(0), buf[n])

	n, err = s.SelectedText(nil)
	assert.ErrorIs(t, err, dropdown.ErrTruncated)
	assert.Zero(t, n)
}

func TestSelectedTextExactFit(t *testing.T) {
	s := newStore(t, "abc")
	buf := make([]byte, 4)
	n, err := s.SelectedText(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("abc\x00"), buf)
}

func TestEmptyStore(t *testing.T) {
	s := dropdown.NewOptionStore(nil, nil)
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, "", s.SelectedString())

	buf := []byte{'x', 'x'}
	n, err := s.SelectedText(buf)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, byte(0), buf[0])

	_, ok := s.Option(0)
	assert.False(t, ok)
}

func TestSetOptionsAllocationFailure(t *testing.T) {
	alloc := dropdown.NewBudgetAllocator(8)
	s := dropdown.NewOptionStore(alloc, nil)
	require.NoError(t, s.SetOptions("A\nB"))

	err := s.SetOptions("far too long for the budget")
	require.Error(t, err)
	assert.True(t, errors.Is(err, dropdown.ErrNoMemory))
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, "", s.Text())
	assert.Equal(t, 0, alloc.Used(), "the previous buffer was freed")
}

func TestAddOptionAllocationFailureKeepsOptions(t *testing.T) {
	alloc := dropdown.NewBudgetAllocator(8)
	s := dropdown.NewOptionStore(alloc, nil)
	require.NoError(t, s.SetOptions("A\nB"))
	_, err := s.SetSelected(1)
	require.NoError(t, err)

	err = s.AddOption("much too long", dropdown.PosLast)
	assert.ErrorIs(t, err, dropdown.ErrNoMemory)
	assert.Equal(t, "A\nB", s.Text())
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, 1, s.Selected())
	assert.Equal(t, 3, alloc.Used())
}

func TestClearFreesOwnedBuffer(t *testing.T) {
	alloc := dropdown.NewBudgetAllocator(64)
	s := dropdown.NewOptionStore(alloc, nil)
	require.NoError(t, s.SetOptions("A\nB\nC"))
	require.NoError(t, s.AddOption("D", dropdown.PosLast))
	assert.Equal(t, 7, alloc.Used())

	s.Clear()
	assert.Equal(t, 0, alloc.Used())
	assert.Equal(t, 0, s.Count())

	s.SetOptionsStatic("static")
	assert.Equal(t, 0, alloc.Used(), "static text is not copied")
}

func TestPendingNavigation(t *testing.T) {
	s := newStore(t, "A\nB\nC")

	assert.False(t, s.MovePending(-1), "no wrap at the top")
	assert.True(t, s.MovePending(1))
	assert.True(t, s.MovePending(1))
	assert.False(t, s.MovePending(1), "no wrap at the bottom")
	assert.Equal(t, 2, s.Pending())
	assert.Equal(t, 0, s.Selected())

	s.Discard()
	assert.Equal(t, 0, s.Pending())

	s.SetPending(1)
	assert.True(t, s.Commit())
	assert.False(t, s.Commit())
	assert.Equal(t, 1, s.Selected())
}

func TestPreviewIndex(t *testing.T) {
	s := newStore(t, "A\nB\nC")
	assert.False(t, s.Preview().IsSet())

	s.SetPreview(dropdown.SomeIndex(1))
	i, ok := s.Preview().Get()
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	s.SetPreview(dropdown.SomeIndex(3))
	assert.False(t, s.Preview().IsSet(), "out of range preview is dropped")
}

func TestRightToLeftProcessing(t *testing.T) {
	for _, tt := range []struct {
		name    string
		process dropdown.TextProcessor
		second  string
	}{
		{"ltr", nil, "שלום"},
		{"rtl", dropdown.ProcessRTL, "םולש"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			s := dropdown.NewOptionStore(nil, tt.process)
			require.NoError(t, s.SetOptions("abc\nשלום"))
			require.NoError(t, s.AddOption("x", dropdown.PosLast))

			assert.Equal(t, 3, s.Count())
			got, ok := s.Option(1)
			require.True(t, ok)
			assert.Equal(t, tt.second, got)

			first, _ := s.Option(0)
			assert.Equal(t, "abc", first)
		})
	}
}

func TestProcessRTLKeepsLatinText(t *testing.T) {
	assert.Equal(t, "plain\ntext", dropdown.ProcessRTL("plain\ntext"))
	assert.Equal(t, "1 םולש 2", dropdown.ProcessRTL("1 שלום 2"))
}
