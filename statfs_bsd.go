// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build darwin || freebsd

package diskstat

import "golang.org/x/sys/unix"

// Bsize is the fundamental (fragment) size on these systems, the
// preferred transfer size is reported separately as Iosize.
func statFS(path string) (filesystemInfo, error) {
	var buf unix.Statfs_t
	if err := unix.Statfs(path, &buf); err != nil {
		return filesystemInfo{}, err
	}
	return filesystemInfo{
		FragmentSize:   uint64(buf.Bsize),
		Fragments:      uint64(buf.Blocks),
		FragmentsFree:  uint64(buf.Bfree),
		FragmentsAvail: nonNegative(buf.Bavail),
	}, nil
}
