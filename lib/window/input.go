package window

import "github.com/go-gl/glfw/v3.3/glfw"

// InputState is the shared receiver for key events. The window writes to it
// from the event poll, the render loop reads it; both happen on the same
// thread so there is no locking.
type InputState struct {
	LastKey    glfw.Key
	LastAction glfw.Action
	KeyEvents  uint64
}

func (s *InputState) Note(key glfw.Key, action glfw.Action) {
	s.LastKey = key
	s.LastAction = action
	s.KeyEvents++
}

// closeKey reports whether a key event should close the window. Escape on
// press, nothing else.
func closeKey(key glfw.Key, action glfw.Action) bool {
	return key == glfw.KeyEscape && action == glfw.Press
}
