package types

import (
	"fmt"
	"path"
	"strings"
)

// Rect represents a window rectangle in virtual-screen pixel coordinates.
// Coordinates can be negative (secondary monitor left of primary, or a
// minimized window parked off-screen).
type Rect struct {
	Left   int32 `json:"left"`
	Top    int32 `json:"top"`
	Right  int32 `json:"right"`
	Bottom int32 `json:"bottom"`
}

// Width returns the horizontal extent of the rect
func (r Rect) Width() int32 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rect
func (r Rect) Height() int32 {
	return r.Bottom - r.Top
}

// Minimized reports whether the rect looks like a minimized window.
// Windows parks minimized windows at large negative coordinates (around
// -32000), so all four edges negative is the detection heuristic. This is
// deliberately not a real window-state query.
func (r Rect) Minimized() bool {
	return r.Left < 0 && r.Top < 0 && r.Right < 0 && r.Bottom < 0
}

// String returns the rect as "(left,top)-(right,bottom)"
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// Point represents a 2D screen coordinate
type Point struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Size represents window dimensions in pixels
type Size struct {
	Width  int32 `json:"width"`
	Height int32 `json:"height"`
}

// Geometry holds the caller-supplied position/size overrides. A nil field
// means "keep the window's current value"; an explicit zero is a real
// coordinate, so sentinel values are never used.
type Geometry struct {
	X      *int32 `json:"x,omitempty"`
	Y      *int32 `json:"y,omitempty"`
	Width  *int32 `json:"width,omitempty"`
	Height *int32 `json:"height,omitempty"`
}

// Empty reports whether no override field was supplied
func (g Geometry) Empty() bool {
	return g.X == nil && g.Y == nil && g.Width == nil && g.Height == nil
}

// Merge overlays the supplied fields onto the current rect and returns the
// target rect. Each field falls back independently: absent x/y keep the
// current top-left, absent width/height keep the current extent.
func (g Geometry) Merge(current Rect) Rect {
	x := current.Left
	if g.X != nil {
		x = *g.X
	}
	y := current.Top
	if g.Y != nil {
		y = *g.Y
	}
	w := current.Width()
	if g.Width != nil {
		w = *g.Width
	}
	h := current.Height()
	if g.Height != nil {
		h = *g.Height
	}
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// SelectorKind discriminates the two process selection modes
type SelectorKind int

const (
	SelectByName SelectorKind = iota // wildcard match on executable name
	SelectByPID                      // exact process id
)

// Selector identifies the processes to operate on. Exactly one kind is
// active per invocation; name and pid selection are alternative input
// modes, never combined.
type Selector struct {
	Kind    SelectorKind
	Pattern string // SelectByName only
	PID     uint32 // SelectByPID only
}

// ByName returns a name-pattern selector. An empty pattern selects every
// process, matching the default "*".
func ByName(pattern string) Selector {
	if pattern == "" {
		pattern = "*"
	}
	return Selector{Kind: SelectByName, Pattern: pattern}
}

// ByPID returns an exact-pid selector
func ByPID(pid uint32) Selector {
	return Selector{Kind: SelectByPID, PID: pid}
}

// MatchName reports whether an executable name matches a ByName selector.
// Matching is case-insensitive and accepts the name both with and without
// its extension, so "calc" matches "calc.exe". PID selectors never match
// by name.
func (s Selector) MatchName(name string) bool {
	if s.Kind != SelectByName {
		return false
	}
	pattern := strings.ToLower(s.Pattern)
	name = strings.ToLower(name)

	if ok, err := path.Match(pattern, name); err == nil && ok {
		return true
	}
	if ext := path.Ext(name); ext != "" {
		bare := strings.TrimSuffix(name, ext)
		if ok, err := path.Match(pattern, bare); err == nil && ok {
			return true
		}
	}
	return false
}

// String returns a human-readable selector description for logs and warnings
func (s Selector) String() string {
	switch s.Kind {
	case SelectByPID:
		return fmt.Sprintf("pid %d", s.PID)
	default:
		return fmt.Sprintf("name %q", s.Pattern)
	}
}

// Process describes a live process and its main window handle as reported
// by the OS process table. A zero MainWindow means the process owns no
// visible top-level window.
type Process struct {
	PID        uint32  `json:"pid"`
	Name       string  `json:"name"`
	MainWindow uintptr `json:"-"`
}

// HasWindow reports whether the process owns a visible top-level window
func (p Process) HasWindow() bool {
	return p.MainWindow != 0
}

// WindowResult is the per-window output record, derived entirely from the
// post-move rect. Constructed fresh per matched window; never persisted.
type WindowResult struct {
	ProcessID   uint32 `json:"processId"`
	ProcessName string `json:"processName"`
	Size        Size   `json:"size"`
	TopLeft     Point  `json:"topLeft"`
	BottomRight Point  `json:"bottomRight"`
	Minimized   bool   `json:"minimized"`
}

// ResultFor builds a WindowResult from a process and its current rect
func ResultFor(p Process, r Rect) WindowResult {
	return WindowResult{
		ProcessID:   p.PID,
		ProcessName: p.Name,
		Size:        Size{Width: r.Width(), Height: r.Height()},
		TopLeft:     Point{X: r.Left, Y: r.Top},
		BottomRight: Point{X: r.Right, Y: r.Bottom},
		Minimized:   r.Minimized(),
	}
}
