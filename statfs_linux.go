// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build linux

package diskstat

import "golang.org/x/sys/unix"

func statFS(path string) (filesystemInfo, error) {
	var buf unix.Statfs_t
	if err := unix.Statfs(path, &buf); err != nil {
		return filesystemInfo{}, err
	}
	return fromStatfs(&buf), nil
}

func fromStatfs(buf *unix.Statfs_t) filesystemInfo {
	// Frsize is zero on kernels that predate its introduction, in which
	// case the block and fragment sizes are the same.
	frsize := uint64(buf.Frsize)
	if frsize == 0 {
		frsize = uint64(buf.Bsize)
	}
	return filesystemInfo{
		FragmentSize:   frsize,
		Fragments:      buf.Blocks,
		FragmentsFree:  buf.Bfree,
		FragmentsAvail: buf.Bavail,
	}
}
