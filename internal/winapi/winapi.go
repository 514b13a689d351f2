// Package winapi wraps the two user32 window primitives the positioner
// needs: reading a window rectangle and moving/resizing a window.
package winapi

import (
	"errors"

	"github.com/yourusername/winpos/internal/types"
)

// ErrUnsupported is returned by the native bindings on platforms without
// user32.
var ErrUnsupported = errors.New("window primitives require windows")

// Native is the production window API backed by user32. The procs are
// resolved lazily once per process via the system DLL loader.
type Native struct{}

// WindowRect reads the current screen rectangle of a window
func (Native) WindowRect(hwnd uintptr) (types.Rect, error) {
	return windowRect(hwnd)
}

// MoveWindow repositions and resizes a window in one call
func (Native) MoveWindow(hwnd uintptr, x, y, width, height int32, repaint bool) error {
	return moveWindow(hwnd, x, y, width, height, repaint)
}
