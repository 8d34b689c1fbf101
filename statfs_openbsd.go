// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build openbsd

package diskstat

import "golang.org/x/sys/unix"

func statFS(path string) (filesystemInfo, error) {
	var buf unix.Statfs_t
	if err := unix.Statfs(path, &buf); err != nil {
		return filesystemInfo{}, err
	}
	return filesystemInfo{
		FragmentSize:   uint64(buf.F_bsize),
		Fragments:      uint64(buf.F_blocks),
		FragmentsFree:  uint64(buf.F_bfree),
		FragmentsAvail: nonNegative(buf.F_bavail),
	}, nil
}
