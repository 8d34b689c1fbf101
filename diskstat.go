// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package diskstat reports the capacity of the filesystem that contains
// a given path. Sizes are computed from the filesystem's fragment
// (fundamental allocation unit) size rather than its preferred block size
// so that they are byte accurate on filesystems where the two differ.
//
// Each call issues a single, synchronous, read-only query to the operating
// system; nothing is cached and it is safe to call concurrently.
package diskstat

import (
	"errors"
	"fmt"
)

// ErrQueryFailed is returned, wrapped together with the underlying
// operating system error, whenever the filesystem statistics for a path
// cannot be obtained.
var ErrQueryFailed = errors.New("filesystem statistics query failed")

// Usage represents the capacity of a filesystem in bytes.
type Usage struct {
	// Total is the size of the filesystem.
	Total uint64 `json:"total" yaml:"total"`
	// Free is the free space on the filesystem, including any space
	// reserved for the superuser.
	Free uint64 `json:"free" yaml:"free"`
	// Available is the free space available to unprivileged callers.
	Available uint64 `json:"available" yaml:"available"`
	// FragmentSize is the allocation unit used to compute the above.
	FragmentSize uint64 `json:"fragment_size" yaml:"fragment_size"`
}

// Used returns Total - Free.
func (u Usage) Used() uint64 {
	if u.Free > u.Total {
		return 0
	}
	return u.Total - u.Free
}

// UsedPercent returns the percentage of the filesystem that is in use.
func (u Usage) UsedPercent() float64 {
	if u.Total == 0 {
		return 0
	}
	return float64(u.Used()) / float64(u.Total) * 100.0
}

type filesystemInfo struct {
	FragmentSize   uint64
	Fragments      uint64
	FragmentsFree  uint64
	FragmentsAvail uint64
}

func (fi filesystemInfo) usage() Usage {
	return Usage{
		Total:        fi.FragmentSize * fi.Fragments,
		Free:         fi.FragmentSize * fi.FragmentsFree,
		Available:    fi.FragmentSize * fi.FragmentsAvail,
		FragmentSize: fi.FragmentSize,
	}
}

// Stat returns the capacity of the filesystem containing path. The path
// is not validated beyond what the operating system itself requires.
// All errors satisfy errors.Is(err, ErrQueryFailed) and also wrap the
// operating system's error. The returned Usage is the zero value on error.
func Stat(path string) (Usage, error) {
	fi, err := statFS(path)
	if err != nil {
		return Usage{}, fmt.Errorf("%w: %q: %w", ErrQueryFailed, path, err)
	}
	return fi.usage(), nil
}

// Total returns the total size, in bytes, of the filesystem containing path.
func Total(path string) (uint64, error) {
	u, err := Stat(path)
	return u.Total, err
}

// Free returns the free space, in bytes, on the filesystem containing path.
func Free(path string) (uint64, error) {
	u, err := Stat(path)
	return u.Free, err
}
