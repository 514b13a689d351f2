//go:build !windows

package process

import "github.com/yourusername/winpos/internal/types"

func matching(types.Selector) ([]types.Process, error) {
	return nil, ErrUnsupported
}
