// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build darwin || freebsd || openbsd

package diskstat

// nonNegative clamps the available count, which some systems report as
// negative once the reserved space is in use.
func nonNegative[T ~int32 | ~int64 | ~uint32 | ~uint64](v T) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}
