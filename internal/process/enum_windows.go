//go:build windows

package process

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/yourusername/winpos/internal/types"
)

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procGetWindow                = user32.NewProc("GetWindow")
)

const gwOwner = 4 // GW_OWNER

func matching(sel types.Selector) ([]types.Process, error) {
	snap, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return nil, fmt.Errorf("process snapshot: %w", err)
	}
	defer windows.CloseHandle(snap)

	var procs []types.Process
	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	if err := windows.Process32First(snap, &entry); err != nil {
		return nil, nil
	}
	for {
		name := windows.UTF16ToString(entry.ExeFile[:])
		match := false
		switch sel.Kind {
		case types.SelectByPID:
			match = entry.ProcessID == sel.PID
		default:
			match = sel.MatchName(name)
		}
		if match {
			procs = append(procs, types.Process{PID: entry.ProcessID, Name: name})
		}
		if err := windows.Process32Next(snap, &entry); err != nil {
			break
		}
	}

	if len(procs) == 0 {
		return nil, nil
	}

	windowsByPID := mainWindows()
	for i := range procs {
		procs[i].MainWindow = windowsByPID[procs[i].PID]
	}
	return procs, nil
}

// enumTarget receives the pid->hwnd mapping during an EnumWindows pass.
// The callback is created once; syscall callbacks come from a small
// process-wide pool and cannot be released. Safe because the CLI is
// single-threaded.
var enumTarget map[uint32]uintptr

var enumProc = syscall.NewCallback(func(hwnd, _ uintptr) uintptr {
	var pid uint32
	procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	if pid == 0 {
		return 1
	}
	if _, seen := enumTarget[pid]; seen {
		return 1
	}
	if visible, _, _ := procIsWindowVisible.Call(hwnd); visible == 0 {
		return 1
	}
	if owner, _, _ := procGetWindow.Call(hwnd, gwOwner); owner != 0 {
		return 1
	}
	enumTarget[pid] = hwnd
	return 1
})

// mainWindows maps each pid to its first visible, unowned top-level
// window, mirroring what the process table reports as a process's main
// window handle.
func mainWindows() map[uint32]uintptr {
	enumTarget = make(map[uint32]uintptr)
	procEnumWindows.Call(enumProc, 0)
	found := enumTarget
	enumTarget = nil
	return found
}
