// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build linux

package diskstat

import (
	"testing"

	"golang.org/x/sys/unix"
)

// statfsSnapshot returns the result of Stat along with a raw statfs
// taken immediately before and after it with the same free counts, so
// that the two can be compared exactly on a filesystem in use.
func statfsSnapshot(t *testing.T, path string) (Usage, unix.Statfs_t) {
	for range 20 {
		var before, after unix.Statfs_t
		if err := unix.Statfs(path, &before); err != nil {
			t.Fatal(err)
		}
		u, err := Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := unix.Statfs(path, &after); err != nil {
			t.Fatal(err)
		}
		if before.Bfree == after.Bfree && before.Bavail == after.Bavail {
			return u, after
		}
	}
	t.Fatalf("%v: free space did not settle", path)
	return Usage{}, unix.Statfs_t{}
}

func TestFragmentSize(t *testing.T) {
	for _, path := range []string{"/", t.TempDir()} {
		u, buf := statfsSnapshot(t, path)
		frsize := uint64(buf.Frsize)
		if frsize == 0 {
			frsize = uint64(buf.Bsize)
		}
		if got, want := u.FragmentSize, frsize; got != want {
			t.Errorf("%v: got %v, want %v", path, got, want)
		}
		if got, want := u.Total, frsize*buf.Blocks; got != want {
			t.Errorf("%v: total: got %v, want %v", path, got, want)
		}
		if got, want := u.Free, frsize*buf.Bfree; got != want {
			t.Errorf("%v: free: got %v, want %v", path, got, want)
		}
		if got, want := u.Available, frsize*buf.Bavail; got != want {
			t.Errorf("%v: available: got %v, want %v", path, got, want)
		}
		if buf.Bfree != buf.Bavail && u.Free == u.Available {
			t.Errorf("%v: free and available should differ: %v", path, u.Free)
		}
		t.Logf("%v: frsize %v, bfree %v, bavail %v", path, frsize, buf.Bfree, buf.Bavail)
	}
}

func TestFromStatfs(t *testing.T) {
	for i, tc := range []struct {
		buf  unix.Statfs_t
		want filesystemInfo
	}{
		{
			unix.Statfs_t{Bsize: 4096, Frsize: 1024, Blocks: 1000, Bfree: 400, Bavail: 350},
			filesystemInfo{FragmentSize: 1024, Fragments: 1000, FragmentsFree: 400, FragmentsAvail: 350},
		},
		{
			unix.Statfs_t{Bsize: 4096, Frsize: 0, Blocks: 10, Bfree: 5, Bavail: 0},
			filesystemInfo{FragmentSize: 4096, Fragments: 10, FragmentsFree: 5, FragmentsAvail: 0},
		},
	} {
		if got, want := fromStatfs(&tc.buf), tc.want; got != want {
			t.Errorf("%v: got %+v, want %+v", i, got, want)
		}
	}
	u := fromStatfs(&unix.Statfs_t{Frsize: 512, Blocks: 100, Bfree: 60, Bavail: 20}).usage()
	if got, want := u.Free, uint64(512*60); got != want {
		t.Errorf("free: got %v, want %v", got, want)
	}
	if got, want := u.Available, uint64(512*20); got != want {
		t.Errorf("available: got %v, want %v", got, want)
	}
}

func TestUsageConversion(t *testing.T) {
	fi := filesystemInfo{
		FragmentSize:   1024,
		Fragments:      1000,
		FragmentsFree:  400,
		FragmentsAvail: 350,
	}
	u := fi.usage()
	if got, want := u, (Usage{Total: 1024000, Free: 409600, Available: 358400, FragmentSize: 1024}); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
