//go:build windows

package activation

import (
	"fmt"
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"
)

var (
	clsidApplicationActivationManager = ole.NewGUID("{45BA127D-10A8-46EA-8AB7-56EA9078943C}")
	iidIApplicationActivationManager  = ole.NewGUID("{2E941141-7F97-4756-BA1D-9DECDE894A3D}")
)

type applicationActivationManager struct {
	ole.IUnknown
}

type applicationActivationManagerVtbl struct {
	ole.IUnknownVtbl
	ActivateApplication uintptr
	ActivateForFile     uintptr
	ActivateForProtocol uintptr
}

// activateApplication asks the shell activation service to start the
// application, with no activation arguments or options, and returns the new
// process id. The COM apartment is initialized for this call only and torn
// down on every exit path.
func activateApplication(appID string) (int32, error) {
	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil && !comAlreadyInitialized(err) {
		return 0, fmt.Errorf("initialize COM: %w", err)
	}
	// S_FALSE from CoInitializeEx still increments the apartment's init
	// count, so the uninitialize must run on that path too.
	defer ole.CoUninitialize()

	unknown, err := ole.CreateInstance(clsidApplicationActivationManager, iidIApplicationActivationManager)
	if err != nil {
		return 0, fmt.Errorf("create activation manager: %w", err)
	}
	defer unknown.Release()

	aumid, err := syscall.UTF16PtrFromString(appID)
	if err != nil {
		return 0, fmt.Errorf("encode application id: %w", err)
	}

	mgr := (*applicationActivationManager)(unsafe.Pointer(unknown))
	vtbl := (*applicationActivationManagerVtbl)(unsafe.Pointer(mgr.RawVTable))

	// HRESULT ActivateApplication(LPCWSTR appUserModelId, LPCWSTR arguments,
	//                             ACTIVATEOPTIONS options, DWORD *processId)
	var pid uint32
	hr, _, _ := syscall.SyscallN(
		vtbl.ActivateApplication,
		uintptr(unsafe.Pointer(mgr)),
		uintptr(unsafe.Pointer(aumid)),
		0, // no activation arguments
		0, // AO_NONE
		uintptr(unsafe.Pointer(&pid)),
	)
	if hr != 0 {
		return 0, fmt.Errorf("activate application: %w", ole.NewError(hr))
	}

	return int32(pid), nil
}
