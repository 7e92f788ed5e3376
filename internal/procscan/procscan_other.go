//go:build !windows

package procscan

import (
	"github.com/shirou/gopsutil/process"
)

func enumeratePids(capacity int) ([]int32, error) {
	pids, err := process.Pids()
	if err != nil {
		return nil, err
	}
	if len(pids) > capacity {
		pids = pids[:capacity]
	}
	return pids, nil
}

func resolvePid(pid int32) (ProcessInfo, error) {
	proc, err := process.NewProcess(pid)
	if err != nil {
		return ProcessInfo{}, ErrProcessAbsent
	}

	path, err := proc.Exe()
	if err != nil || path == "" {
		path = UnknownPath
	}

	return ProcessInfo{Name: baseName(path), Path: path}, nil
}
