// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build windows

package diskstat

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

// GetDiskFreeSpaceEx requires a directory, paths to files are queried
// via their parent directory.
func statFS(path string) (filesystemInfo, error) {
	fi, err := diskFreeSpace(path)
	if err == nil {
		return fi, nil
	}
	if info, serr := os.Stat(path); serr == nil && !info.IsDir() {
		return diskFreeSpace(filepath.Dir(path))
	}
	return filesystemInfo{}, err
}

// GetDiskFreeSpaceEx reports bytes directly so the fragment size is 1.
func diskFreeSpace(path string) (filesystemInfo, error) {
	dirname, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return filesystemInfo{}, err
	}
	var bytesAvailable, bytesTotal, bytesFree uint64
	err = windows.GetDiskFreeSpaceEx(
		dirname,
		&bytesAvailable,
		&bytesTotal,
		&bytesFree,
	)
	if err != nil {
		return filesystemInfo{}, err
	}
	return filesystemInfo{
		FragmentSize:   1,
		Fragments:      bytesTotal,
		FragmentsFree:  bytesFree,
		FragmentsAvail: bytesAvailable,
	}, nil
}
