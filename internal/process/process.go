// Package process resolves a selector against the OS process table and
// reports each match's main window handle.
package process

import (
	"errors"

	"github.com/yourusername/winpos/internal/types"
)

// ErrUnsupported is returned on platforms without a native process table
// binding.
var ErrUnsupported = errors.New("process enumeration requires windows")

// Enumerator resolves a selector to live processes
type Enumerator interface {
	Matching(sel types.Selector) ([]types.Process, error)
}

// Table is the production enumerator backed by a Toolhelp32 snapshot of
// the OS process table.
type Table struct{}

// Matching returns every live process the selector matches, in the order
// the OS snapshot reports them. That order is not stable across calls.
// A process with no visible top-level window is still returned, with a
// zero MainWindow handle.
func (Table) Matching(sel types.Selector) ([]types.Process, error) {
	return matching(sel)
}
