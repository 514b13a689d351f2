package positioner

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/yourusername/winpos/internal/types"
)

// fakeEnumerator returns a canned process list
type fakeEnumerator struct {
	procs []types.Process
	err   error
}

func (f fakeEnumerator) Matching(types.Selector) ([]types.Process, error) {
	return f.procs, f.err
}

// fakeWindows simulates the two user32 primitives against an in-memory
// rect per window handle.
type fakeWindows struct {
	rects     map[uintptr]types.Rect
	readFail  map[uintptr]bool
	moveFail  map[uintptr]bool
	moveCalls []uintptr
}

func newFakeWindows() *fakeWindows {
	return &fakeWindows{
		rects:    make(map[uintptr]types.Rect),
		readFail: make(map[uintptr]bool),
		moveFail: make(map[uintptr]bool),
	}
}

func (f *fakeWindows) WindowRect(hwnd uintptr) (types.Rect, error) {
	if f.readFail[hwnd] {
		return types.Rect{}, errors.New("GetWindowRect failed")
	}
	r, ok := f.rects[hwnd]
	if !ok {
		return types.Rect{}, fmt.Errorf("unknown window %#x", hwnd)
	}
	return r, nil
}

func (f *fakeWindows) MoveWindow(hwnd uintptr, x, y, width, height int32, repaint bool) error {
	f.moveCalls = append(f.moveCalls, hwnd)
	if f.moveFail[hwnd] {
		return errors.New("MoveWindow failed")
	}
	if !repaint {
		return errors.New("move must always request a redraw")
	}
	f.rects[hwnd] = types.Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
	return nil
}

func i32(v int32) *int32 { return &v }

func TestApply_NoOverridesReportsCurrentRect(t *testing.T) {
	// Scenario: one matching process at (100,100,600,500), no overrides,
	// passthrough requested.
	win := newFakeWindows()
	win.rects[0x100] = types.Rect{Left: 100, Top: 100, Right: 600, Bottom: 500}

	p := &Positioner{
		Procs:   fakeEnumerator{procs: []types.Process{{PID: 7, Name: "calc.exe", MainWindow: 0x100}}},
		Windows: win,
	}

	rep, err := p.Apply(Options{Selector: types.ByName("calc"), Passthrough: true})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(rep.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(rep.Results))
	}
	r := rep.Results[0]
	if r.Size != (types.Size{Width: 500, Height: 400}) {
		t.Errorf("Size = %+v, want 500x400", r.Size)
	}
	if r.TopLeft != (types.Point{X: 100, Y: 100}) || r.BottomRight != (types.Point{X: 600, Y: 500}) {
		t.Errorf("corners = %+v / %+v", r.TopLeft, r.BottomRight)
	}
	if len(rep.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", rep.Warnings)
	}
	if len(win.moveCalls) != 1 {
		t.Errorf("move called %d times, want 1 (issued even without overrides)", len(win.moveCalls))
	}
}

func TestApply_PositionOverrideKeepsSize(t *testing.T) {
	// Scenario: pid selector with x/y overrides; size must stay what the
	// pre-move read reported.
	win := newFakeWindows()
	win.rects[0x200] = types.Rect{Left: 300, Top: 250, Right: 900, Bottom: 700}

	p := &Positioner{
		Procs:   fakeEnumerator{procs: []types.Process{{PID: 11140, Name: "notepad.exe", MainWindow: 0x200}}},
		Windows: win,
	}

	rep, err := p.Apply(Options{
		Selector:    types.ByPID(11140),
		Geometry:    types.Geometry{X: i32(20), Y: i32(40)},
		Passthrough: true,
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(rep.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(rep.Results))
	}
	r := rep.Results[0]
	if r.TopLeft != (types.Point{X: 20, Y: 40}) {
		t.Errorf("TopLeft = %+v, want (20,40)", r.TopLeft)
	}
	if r.Size != (types.Size{Width: 600, Height: 450}) {
		t.Errorf("Size = %+v, want pre-move 600x450", r.Size)
	}
}

func TestApply_MinimizedWindowWarns(t *testing.T) {
	// Scenario: minimized cmd window parked at -32000.
	win := newFakeWindows()
	win.rects[0x300] = types.Rect{Left: -32000, Top: -32000, Right: -31801, Bottom: -31966}

	p := &Positioner{
		Procs:   fakeEnumerator{procs: []types.Process{{PID: 5, Name: "cmd.exe", MainWindow: 0x300}}},
		Windows: win,
	}

	rep, err := p.Apply(Options{Selector: types.ByName("cmd"), Passthrough: true})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(rep.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(rep.Results))
	}
	if !rep.Results[0].Minimized {
		t.Error("result should be flagged minimized")
	}
	if rep.Results[0].Size != (types.Size{Width: 199, Height: 34}) {
		t.Errorf("Size = %+v, want 199x34", rep.Results[0].Size)
	}
	if len(rep.Warnings) != 1 || !strings.Contains(rep.Warnings[0], "minimized") {
		t.Errorf("want one minimized warning, got %v", rep.Warnings)
	}
}

func TestApply_NoMatchWithPassthrough(t *testing.T) {
	p := &Positioner{Procs: fakeEnumerator{}, Windows: newFakeWindows()}

	rep, err := p.Apply(Options{Selector: types.ByPID(99999), Passthrough: true})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(rep.Results) != 0 {
		t.Errorf("got %d results, want 0", len(rep.Results))
	}
	if len(rep.Warnings) != 1 || !strings.Contains(rep.Warnings[0], "no process found") {
		t.Errorf("want exactly one no-match warning, got %v", rep.Warnings)
	}
}

func TestApply_NoMatchWithoutPassthroughIsSilent(t *testing.T) {
	p := &Positioner{Procs: fakeEnumerator{}, Windows: newFakeWindows()}

	rep, err := p.Apply(Options{Selector: types.ByName("ghost")})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(rep.Results) != 0 || len(rep.Warnings) != 0 {
		t.Errorf("want empty report, got %+v", rep)
	}
}

func TestApply_LookupErrorTreatedAsNoMatch(t *testing.T) {
	p := &Positioner{
		Procs:   fakeEnumerator{err: errors.New("access denied")},
		Windows: newFakeWindows(),
	}

	rep, err := p.Apply(Options{Selector: types.ByName("*"), Passthrough: true})
	if err != nil {
		t.Fatalf("lookup failure must not be fatal: %v", err)
	}
	if len(rep.Warnings) != 1 || !strings.Contains(rep.Warnings[0], "no process found") {
		t.Errorf("want no-match warning, got %v", rep.Warnings)
	}
}

func TestApply_ProcessWithoutWindowSkippedSilently(t *testing.T) {
	win := newFakeWindows()
	win.rects[0x400] = types.Rect{Left: 0, Top: 0, Right: 800, Bottom: 600}

	p := &Positioner{
		Procs: fakeEnumerator{procs: []types.Process{
			{PID: 1, Name: "svchost.exe"}, // no window
			{PID: 2, Name: "svchost.exe", MainWindow: 0x400},
		}},
		Windows: win,
	}

	rep, err := p.Apply(Options{Selector: types.ByName("svchost"), Passthrough: true})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(rep.Results) != 1 || rep.Results[0].ProcessID != 2 {
		t.Fatalf("want one result for pid 2, got %+v", rep.Results)
	}
	if len(rep.Warnings) != 0 {
		t.Errorf("windowless process must not warn, got %v", rep.Warnings)
	}
}

func TestApply_FailedReadSkipsMove(t *testing.T) {
	win := newFakeWindows()
	win.rects[0x500] = types.Rect{Left: 0, Top: 0, Right: 100, Bottom: 100}
	win.readFail[0x500] = true

	p := &Positioner{
		Procs:   fakeEnumerator{procs: []types.Process{{PID: 3, Name: "a.exe", MainWindow: 0x500}}},
		Windows: win,
	}

	rep, err := p.Apply(Options{Selector: types.ByName("a"), Passthrough: true})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(win.moveCalls) != 0 {
		t.Error("move must not be attempted after a failed rect read")
	}
	if len(rep.Results) != 0 {
		t.Errorf("failed window must produce no result, got %+v", rep.Results)
	}
}

func TestApply_OneFailureDoesNotAbortOthers(t *testing.T) {
	win := newFakeWindows()
	win.rects[0x600] = types.Rect{Left: 0, Top: 0, Right: 100, Bottom: 100}
	win.rects[0x601] = types.Rect{Left: 50, Top: 50, Right: 150, Bottom: 150}
	win.moveFail[0x600] = true

	p := &Positioner{
		Procs: fakeEnumerator{procs: []types.Process{
			{PID: 10, Name: "app.exe", MainWindow: 0x600},
			{PID: 11, Name: "app.exe", MainWindow: 0x601},
		}},
		Windows: win,
	}

	rep, err := p.Apply(Options{
		Selector:    types.ByName("app"),
		Geometry:    types.Geometry{X: i32(10), Y: i32(10)},
		Passthrough: true,
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(rep.Results) != 1 || rep.Results[0].ProcessID != 11 {
		t.Fatalf("second window must still be moved and reported, got %+v", rep.Results)
	}
	if rep.Results[0].TopLeft != (types.Point{X: 10, Y: 10}) {
		t.Errorf("TopLeft = %+v, want (10,10)", rep.Results[0].TopLeft)
	}
}

func TestApply_Idempotent(t *testing.T) {
	win := newFakeWindows()
	win.rects[0x700] = types.Rect{Left: 100, Top: 100, Right: 600, Bottom: 500}

	p := &Positioner{
		Procs:   fakeEnumerator{procs: []types.Process{{PID: 8, Name: "term.exe", MainWindow: 0x700}}},
		Windows: win,
	}

	opts := Options{
		Selector:    types.ByName("term"),
		Geometry:    types.Geometry{X: i32(0), Y: i32(0), Width: i32(1280), Height: i32(720)},
		Passthrough: true,
	}

	first, err := p.Apply(opts)
	if err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	second, err := p.Apply(opts)
	if err != nil {
		t.Fatalf("second Apply: %v", err)
	}
	if first.Results[0] != second.Results[0] {
		t.Errorf("repeat invocation diverged: %+v vs %+v", first.Results[0], second.Results[0])
	}
	want := types.Rect{Left: 0, Top: 0, Right: 1280, Bottom: 720}
	if win.rects[0x700] != want {
		t.Errorf("final rect = %v, want %v", win.rects[0x700], want)
	}
}

func TestInspect_ReportsWithoutMoving(t *testing.T) {
	win := newFakeWindows()
	win.rects[0x800] = types.Rect{Left: 100, Top: 100, Right: 600, Bottom: 500}

	p := &Positioner{
		Procs:   fakeEnumerator{procs: []types.Process{{PID: 9, Name: "calc.exe", MainWindow: 0x800}}},
		Windows: win,
	}

	rep, err := p.Inspect(types.ByName("calc"))
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if len(rep.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(rep.Results))
	}
	if len(win.moveCalls) != 0 {
		t.Error("Inspect must not move windows")
	}
}

func TestInspect_NoMatchAlwaysWarns(t *testing.T) {
	p := &Positioner{Procs: fakeEnumerator{}, Windows: newFakeWindows()}

	rep, err := p.Inspect(types.ByName("ghost"))
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if len(rep.Warnings) != 1 {
		t.Errorf("want one warning, got %v", rep.Warnings)
	}
}
