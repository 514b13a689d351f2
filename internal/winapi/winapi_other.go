//go:build !windows

package winapi

import "github.com/yourusername/winpos/internal/types"

func windowRect(uintptr) (types.Rect, error) {
	return types.Rect{}, ErrUnsupported
}

func moveWindow(uintptr, int32, int32, int32, int32, bool) error {
	return ErrUnsupported
}
