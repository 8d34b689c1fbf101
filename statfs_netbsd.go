// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build netbsd

package diskstat

import "golang.org/x/sys/unix"

func statFS(path string) (filesystemInfo, error) {
	var buf unix.Statvfs_t
	if err := unix.Statvfs(path, &buf); err != nil {
		return filesystemInfo{}, err
	}
	return filesystemInfo{
		FragmentSize:   uint64(buf.Frsize),
		Fragments:      uint64(buf.Blocks),
		FragmentsFree:  uint64(buf.Bfree),
		FragmentsAvail: uint64(buf.Bavail),
	}, nil
}
