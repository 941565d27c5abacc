package scene

import "log"

// Stack is an ordered sequence of scenes; the last element is the active
// one. It is single-threaded by construction: all mutation happens on the
// loop goroutine, including mutation performed by the active scene's own
// Update callback.
//
// Any mutation marks the stack stale for the remainder of the current
// frame. The loop clears the flag at the start of every frame and stops
// updating and rendering once it is set, so a scene never observes a
// successor's lifetime while it is itself mid-callback.
type Stack struct {
	scenes []Scene
	stale  bool
	logger *log.Logger
}

// NewStack creates an empty stack. Deinit failures are reported on logger;
// a nil logger falls back to log.Default().
func NewStack(logger *log.Logger) *Stack {
	if logger == nil {
		logger = log.Default()
	}
	return &Stack{logger: logger}
}

// Push appends sc as the new active scene and marks the stack stale.
func (s *Stack) Push(sc Scene) {
	s.scenes = append(s.scenes, sc)
	s.stale = true
}

// Pop removes and deinitializes the active scene and marks the stack
// stale. Popping an empty stack is a no-op.
func (s *Stack) Pop() {
	if len(s.scenes) == 0 {
		return
	}
	last := len(s.scenes) - 1
	s.deinit(s.scenes[last])
	s.scenes[last] = nil
	s.scenes = s.scenes[:last]
	s.stale = true
}

// Replace swaps the active scene for sc as one operation: the old top is
// deinitialized and sc takes its slot, with a single stale mark and no
// intermediate state in which the stack has lost its top element. On an
// empty stack Replace degenerates to Push.
func (s *Stack) Replace(sc Scene) {
	if len(s.scenes) == 0 {
		s.Push(sc)
		return
	}
	last := len(s.scenes) - 1
	s.deinit(s.scenes[last])
	s.scenes[last] = sc
	s.stale = true
}

// Top returns the active scene, or ok=false for an empty stack.
func (s *Stack) Top() (sc Scene, ok bool) {
	if len(s.scenes) == 0 {
		return nil, false
	}
	return s.scenes[len(s.scenes)-1], true
}

// Len returns the number of resident scenes.
func (s *Stack) Len() int {
	return len(s.scenes)
}

// Stale reports whether the stack was mutated since the last ClearStale.
func (s *Stack) Stale() bool {
	return s.stale
}

// ClearStale resets the stale flag. The loop calls this at the start of
// every frame.
func (s *Stack) ClearStale() {
	s.stale = false
}

// Unwind deinitializes every resident scene, top to bottom, and empties
// the stack. Used during shutdown when the application terminates with
// scenes still resident.
func (s *Stack) Unwind() {
	for i := len(s.scenes) - 1; i >= 0; i-- {
		s.deinit(s.scenes[i])
		s.scenes[i] = nil
	}
	s.scenes = s.scenes[:0]
	s.stale = true
}

// deinit releases one scene. Cleanup failures are logged, never
// propagated, so the rest of the stack still gets torn down.
func (s *Stack) deinit(sc Scene) {
	if err := sc.Deinit(); err != nil {
		s.logger.Printf("scene deinit failed: %v", err)
	}
}
