//go:build windows

package winshell

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"

	"github.com/grovetools/pathwhat/pkg/shellattr"
)

var (
	shell32                = windows.NewLazySystemDLL("shell32.dll")
	procSHParseDisplayName = shell32.NewProc("SHParseDisplayName")
)

// HRESULT for ERROR_INVALID_NAME, used when the input cannot even be
// converted to a UTF-16 string (embedded NUL).
const statusInvalidName shellattr.Status = 0x8007007B

// Resolver resolves display names through the Windows shell namespace via
// SHParseDisplayName. New pins the calling goroutine to its OS thread and
// enters a COM apartment there; Close leaves it.
type Resolver struct {
	log *logrus.Logger
}

// New initializes COM for the calling thread and returns a shell resolver.
func New(log *logrus.Logger) (*Resolver, error) {
	// The shell APIs want a single-threaded apartment, and an apartment is
	// a per-OS-thread property.
	runtime.LockOSThread()
	if err := windows.CoInitializeEx(0, windows.COINIT_APARTMENTTHREADED); err != nil {
		return nil, fmt.Errorf("initialize COM apartment: %w", err)
	}
	return &Resolver{log: log}, nil
}

// Close leaves the COM apartment entered by New.
func (r *Resolver) Close() {
	windows.CoUninitialize()
	runtime.UnlockOSThread()
}

// pidl is the absolute item ID list handed back by the shell. The memory
// belongs to the shell allocator and goes back through CoTaskMemFree.
type pidl struct {
	ptr unsafe.Pointer
}

func (p *pidl) Release() {
	windows.CoTaskMemFree(p.ptr)
}

// Resolve calls SHParseDisplayName with the requested attribute mask. The
// HRESULT is surfaced verbatim as the status; on any failing HRESULT the
// shell allocates no PIDL, so there is nothing to release.
func (r *Resolver) Resolve(path string, requested shellattr.Mask) (shellattr.Item, shellattr.Mask, shellattr.Status) {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		r.log.WithField("path", path).Debug("path is not representable as UTF-16")
		return nil, 0, statusInvalidName
	}

	var raw unsafe.Pointer
	var attrs uint32
	hr, _, _ := procSHParseDisplayName.Call(
		uintptr(unsafe.Pointer(name)),
		0, // no bind context
		uintptr(unsafe.Pointer(&raw)),
		uintptr(uint32(requested)),
		uintptr(unsafe.Pointer(&attrs)),
	)
	if hr != 0 {
		return nil, 0, shellattr.Status(uint32(hr))
	}
	return &pidl{ptr: raw}, shellattr.Mask(attrs), shellattr.StatusOK
}

var _ shellattr.Resolver = (*Resolver)(nil)
