//go:build windows

package procscan

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func enumeratePids(capacity int) ([]int32, error) {
	ids := make([]uint32, capacity)
	var bytesReturned uint32
	if err := windows.EnumProcesses(ids, &bytesReturned); err != nil {
		return nil, err
	}

	count := int(bytesReturned) / int(unsafe.Sizeof(ids[0]))
	if count > len(ids) {
		count = len(ids)
	}

	pids := make([]int32, 0, count)
	for _, id := range ids[:count] {
		pids = append(pids, int32(id))
	}
	return pids, nil
}

// resolvePid opens the process with a query-only handle. The handle never
// outlives the call.
func resolvePid(pid int32) (ProcessInfo, error) {
	handle, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		return ProcessInfo{}, ErrProcessAbsent
	}
	defer windows.CloseHandle(handle)

	path := UnknownPath
	buf := make([]uint16, windows.MAX_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(handle, 0, &buf[0], &size); err == nil && size > 0 {
		path = windows.UTF16ToString(buf[:size])
	}

	return ProcessInfo{Name: baseName(path), Path: path}, nil
}
