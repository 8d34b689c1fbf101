// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mounts

import (
	"os"
	"path/filepath"
	"slices"
)

// LabelDir is the directory in which udev maintains symlinks from
// filesystem labels to device nodes.
const LabelDir = "/dev/disk/by-label"

// Labels returns the sorted names of the entries in dir. The names are
// returned as they appear in dir, Unescape should be used to obtain the
// label itself.
func Labels(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(entries))
	for _, e := range entries {
		labels = append(labels, e.Name())
	}
	slices.Sort(labels)
	return labels, nil
}

// ResolveLabel returns the absolute path of the device that the
// label symlink in dir refers to, with all symlinks evaluated.
func ResolveLabel(dir, label string) (string, error) {
	link := filepath.Join(dir, label)
	target, err := os.Readlink(link)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(dir, target)
	}
	return filepath.EvalSymlinks(filepath.Clean(target))
}
