// Package positioner implements the core engine: resolve a process
// selector to windows, overlay geometry overrides onto each window's
// current rectangle, apply the move, and report the outcome.
package positioner

import (
	"errors"
	"fmt"

	"github.com/yourusername/winpos/internal/logging"
	"github.com/yourusername/winpos/internal/process"
	"github.com/yourusername/winpos/internal/types"
	"github.com/yourusername/winpos/internal/winapi"
)

// WindowAPI is the pair of native window primitives the engine consumes
type WindowAPI interface {
	WindowRect(hwnd uintptr) (types.Rect, error)
	MoveWindow(hwnd uintptr, x, y, width, height int32, repaint bool) error
}

// Enumerator resolves a selector to live processes
type Enumerator interface {
	Matching(sel types.Selector) ([]types.Process, error)
}

// Positioner applies geometry overrides to the windows of matched
// processes. Both collaborators are interfaces so the engine is testable
// without a live desktop.
type Positioner struct {
	Procs   Enumerator
	Windows WindowAPI
}

// New returns a Positioner wired to the native process table and user32
func New() *Positioner {
	return &Positioner{
		Procs:   process.Table{},
		Windows: winapi.Native{},
	}
}

// Options configures a single Apply invocation
type Options struct {
	Selector    types.Selector
	Geometry    types.Geometry
	Passthrough bool // emit a result record per moved window
}

// Report is the outcome of one invocation. Warnings are advisory; a
// partially successful run (some windows moved, others skipped) is the
// expected normal outcome, never an error.
type Report struct {
	Results  []types.WindowResult `json:"results"`
	Warnings []string             `json:"warnings,omitempty"`
}

// Apply resolves the selector and repositions every matched window.
// Matched processes are handled independently, in enumeration order; a
// failed OS call skips the rest of that window's iteration and never
// aborts the others. Without Passthrough the report carries no results
// and no warnings.
func (p *Positioner) Apply(opts Options) (*Report, error) {
	rep := &Report{}

	procs, err := p.lookup(opts.Selector)
	if err != nil {
		return nil, err
	}
	if len(procs) == 0 {
		if opts.Passthrough {
			rep.Warnings = append(rep.Warnings, noMatchWarning(opts.Selector))
		}
		return rep, nil
	}

	for _, proc := range procs {
		if !proc.HasWindow() {
			logging.Debug().
				Uint32("pid", proc.PID).
				Str("process", proc.Name).
				Msg("no visible top-level window, skipping")
			continue
		}

		current, err := p.Windows.WindowRect(proc.MainWindow)
		if err != nil {
			logging.Warn().Err(err).
				Uint32("pid", proc.PID).
				Str("process", proc.Name).
				Msg("failed to read window rect")
			continue
		}

		target := opts.Geometry.Merge(current)
		logging.Info().
			Uint32("pid", proc.PID).
			Str("process", proc.Name).
			Str("from", current.String()).
			Str("to", target.String()).
			Msg("moving window")

		if err := p.Windows.MoveWindow(proc.MainWindow, target.Left, target.Top, target.Width(), target.Height(), true); err != nil {
			logging.Warn().Err(err).
				Uint32("pid", proc.PID).
				Str("process", proc.Name).
				Msg("failed to move window")
			continue
		}

		if !opts.Passthrough {
			continue
		}

		// Re-read after the move so the record reflects OS-imposed
		// clamping at screen boundaries.
		final, err := p.Windows.WindowRect(proc.MainWindow)
		if err != nil {
			logging.Warn().Err(err).
				Uint32("pid", proc.PID).
				Str("process", proc.Name).
				Msg("failed to re-read window rect")
			continue
		}
		p.record(rep, proc, final)
	}

	return rep, nil
}

// Inspect resolves the selector and reports each matched window's current
// rectangle without moving anything. Output is always produced, including
// the no-match warning.
func (p *Positioner) Inspect(sel types.Selector) (*Report, error) {
	rep := &Report{}

	procs, err := p.lookup(sel)
	if err != nil {
		return nil, err
	}
	if len(procs) == 0 {
		rep.Warnings = append(rep.Warnings, noMatchWarning(sel))
		return rep, nil
	}

	for _, proc := range procs {
		if !proc.HasWindow() {
			continue
		}
		current, err := p.Windows.WindowRect(proc.MainWindow)
		if err != nil {
			logging.Warn().Err(err).
				Uint32("pid", proc.PID).
				Str("process", proc.Name).
				Msg("failed to read window rect")
			continue
		}
		p.record(rep, proc, current)
	}

	return rep, nil
}

// lookup queries the enumerator. Lookup failures other than a missing
// platform binding are a data outcome (no matches), not an error.
func (p *Positioner) lookup(sel types.Selector) ([]types.Process, error) {
	procs, err := p.Procs.Matching(sel)
	if err != nil {
		if errors.Is(err, process.ErrUnsupported) {
			return nil, err
		}
		logging.Debug().Err(err).
			Str("selector", sel.String()).
			Msg("process lookup failed, treating as no match")
		return nil, nil
	}
	return procs, nil
}

func (p *Positioner) record(rep *Report, proc types.Process, r types.Rect) {
	result := types.ResultFor(proc, r)
	rep.Results = append(rep.Results, result)
	if result.Minimized {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf(
			"window of %s (pid %d) appears minimized; coordinates reflect its off-screen parking position",
			proc.Name, proc.PID))
	}
}

func noMatchWarning(sel types.Selector) string {
	return fmt.Sprintf("no process found for %s", sel.String())
}
