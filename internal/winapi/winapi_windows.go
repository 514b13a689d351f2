//go:build windows

package winapi

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/yourusername/winpos/internal/types"
)

var (
	user32            = windows.NewLazySystemDLL("user32.dll")
	procGetWindowRect = user32.NewProc("GetWindowRect")
	procMoveWindow    = user32.NewProc("MoveWindow")
)

// windowRect calls GetWindowRect. types.Rect has the same layout as the
// Win32 RECT struct (four int32 fields), so it is passed directly.
func windowRect(hwnd uintptr) (types.Rect, error) {
	var r types.Rect
	ret, _, err := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return types.Rect{}, fmt.Errorf("GetWindowRect: %w", err)
	}
	return r, nil
}

// moveWindow calls MoveWindow with the given position and size
func moveWindow(hwnd uintptr, x, y, width, height int32, repaint bool) error {
	var redraw uintptr
	if repaint {
		redraw = 1
	}
	ret, _, err := procMoveWindow.Call(
		hwnd,
		uintptr(x),
		uintptr(y),
		uintptr(width),
		uintptr(height),
		redraw,
	)
	if ret == 0 {
		return fmt.Errorf("MoveWindow: %w", err)
	}
	return nil
}
