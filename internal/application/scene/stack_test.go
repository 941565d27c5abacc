package scene

import (
	"errors"
	"log"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockScene is a test double for the Scene interface
type mockScene struct {
	name        string
	deinitCalls int
	deinitErr   error
	deinitLog   *[]string
}

func (m *mockScene) Update(ctx Context) {}

func (m *mockScene) Render(ctx Context, screen *ebiten.Image) {}

func (m *mockScene) Deinit() error {
	m.deinitCalls++
	if m.deinitLog != nil {
		*m.deinitLog = append(*m.deinitLog, m.name)
	}
	return m.deinitErr
}

func TestStack_PushMarksStale(t *testing.T) {
	s := NewStack(nil)
	s.ClearStale()

	sc := &mockScene{name: "a"}
	s.Push(sc)

	assert.True(t, s.Stale())
	assert.Equal(t, 1, s.Len())

	top, ok := s.Top()
	require.True(t, ok)
	assert.Same(t, sc, top)
}

func TestStack_TopIsLastPushed(t *testing.T) {
	s := NewStack(nil)
	a := &mockScene{name: "a"}
	b := &mockScene{name: "b"}

	s.Push(a)
	s.Push(b)

	top, ok := s.Top()
	require.True(t, ok)
	assert.Same(t, b, top)
	assert.Equal(t, 2, s.Len())
}

func TestStack_PopDeinitsExactlyOnce(t *testing.T) {
	s := NewStack(nil)
	a := &mockScene{name: "a"}
	b := &mockScene{name: "b"}
	s.Push(a)
	s.Push(b)
	s.ClearStale()

	s.Pop()

	assert.True(t, s.Stale())
	assert.Equal(t, 1, b.deinitCalls)
	assert.Equal(t, 0, a.deinitCalls)

	top, ok := s.Top()
	require.True(t, ok)
	assert.Same(t, a, top)
}

func TestStack_PopEmptyIsNoOp(t *testing.T) {
	s := NewStack(nil)
	s.ClearStale()

	s.Pop()

	assert.False(t, s.Stale(), "nothing changed, nothing stale")
	assert.Equal(t, 0, s.Len())
}

func TestStack_PopLastLeavesEmptyStack(t *testing.T) {
	s := NewStack(nil)
	a := &mockScene{name: "a"}
	s.Push(a)

	s.Pop()

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 1, a.deinitCalls)
	_, ok := s.Top()
	assert.False(t, ok)
}

func TestStack_ReplaceIsAtomic(t *testing.T) {
	s := NewStack(nil)
	old := &mockScene{name: "old"}
	s.Push(old)
	s.ClearStale()

	next := &mockScene{name: "next"}
	s.Replace(next)

	assert.True(t, s.Stale())
	assert.Equal(t, 1, old.deinitCalls)
	assert.Equal(t, 1, s.Len(), "replace never changes depth")

	top, ok := s.Top()
	require.True(t, ok)
	assert.Same(t, next, top)
}

func TestStack_ReplaceEmptyPushes(t *testing.T) {
	s := NewStack(nil)

	sc := &mockScene{name: "a"}
	s.Replace(sc)

	assert.True(t, s.Stale())
	assert.Equal(t, 1, s.Len())
}

func TestStack_UnwindTopToBottom(t *testing.T) {
	s := NewStack(nil)
	var order []string
	a := &mockScene{name: "a", deinitLog: &order}
	b := &mockScene{name: "b", deinitLog: &order}
	c := &mockScene{name: "c", deinitLog: &order}
	s.Push(a)
	s.Push(b)
	s.Push(c)

	s.Unwind()

	assert.Equal(t, []string{"c", "b", "a"}, order, "teardown runs in reverse push order")
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 1, a.deinitCalls)
	assert.Equal(t, 1, b.deinitCalls)
	assert.Equal(t, 1, c.deinitCalls)
}

func TestStack_DeinitFailureDoesNotHaltTeardown(t *testing.T) {
	logger := log.New(&discard{}, "", 0)
	s := NewStack(logger)
	a := &mockScene{name: "a"}
	b := &mockScene{name: "b", deinitErr: errors.New("resource still busy")}
	s.Push(a)
	s.Push(b)

	s.Unwind()

	assert.Equal(t, 1, b.deinitCalls)
	assert.Equal(t, 1, a.deinitCalls, "failure above must not skip scenes below")
	assert.Equal(t, 0, s.Len())
}

func TestStack_PopAfterUnwindDoesNotDoubleDeinit(t *testing.T) {
	s := NewStack(nil)
	a := &mockScene{name: "a"}
	s.Push(a)

	s.Unwind()
	s.Pop()

	assert.Equal(t, 1, a.deinitCalls)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
