// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mounts

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"cloudeng.io/diskstat"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
)

// Disk represents a labelled disk and, if it is mounted, its capacity.
type Disk struct {
	Label          string `json:"label" yaml:"label"`
	Device         string `json:"device" yaml:"device"`
	MountPoint     string `json:"mount_point,omitempty" yaml:"mount_point,omitempty"`
	diskstat.Usage `yaml:",inline"`
}

// Mounted returns true if the disk was found in the mount table.
func (d Disk) Mounted() bool {
	return len(d.MountPoint) > 0
}

// Options represents the locations used by Disks.
type Options struct {
	// LabelDir defaults to the LabelDir constant.
	LabelDir string
	// MountTable defaults to the ProcMounts constant.
	MountTable string
}

// Disks returns all of the labelled disks found in opts.LabelDir in
// label order. Disks that are not mounted are returned with an empty
// MountPoint and zero usage. Mounted disks whose usage cannot be obtained
// have their MountPoint set and zero usage. A failure for any one disk
// does not prevent the others from being returned, all such failures
// are returned as a single cloudeng.io/errors.M.
func Disks(ctx context.Context, opts Options) ([]Disk, error) {
	labelDir := opts.LabelDir
	if len(labelDir) == 0 {
		labelDir = LabelDir
	}
	mountTable := opts.MountTable
	if len(mountTable) == 0 {
		mountTable = ProcMounts
	}
	table, err := ParseFile(ctx, mountTable)
	if err != nil {
		return nil, err
	}
	labels, err := Labels(labelDir)
	if err != nil {
		return nil, err
	}
	logger := ctxlog.Logger(ctx)
	disks := make([]Disk, len(labels))
	var g errgroup.T
	for i, label := range labels {
		disks[i].Label = Unescape(label)
		g.Go(func() error {
			device, err := ResolveLabel(labelDir, label)
			if err != nil {
				return fmt.Errorf("label %q: %w", disks[i].Label, err)
			}
			disks[i].Device = device
			entry, ok := table.lookupDevice(device)
			if !ok {
				logger.Debug("disk not mounted", "label", disks[i].Label, "device", device)
				return nil
			}
			disks[i].MountPoint = entry.MountPoint
			usage, err := diskstat.Stat(entry.MountPoint)
			if err != nil {
				return fmt.Errorf("label %q: %w", disks[i].Label, err)
			}
			disks[i].Usage = usage
			logger.Debug("disk", "label", disks[i].Label, "device", device, "mount_point", entry.MountPoint, "total", usage.Total, "free", usage.Free)
			return nil
		})
	}
	return disks, g.Wait()
}

// lookupDevice is like Lookup but will also match table entries whose
// device is a symlink to device, as is the case for /dev/mapper and
// /dev/disk/by-* entries.
func (t Table) lookupDevice(device string) (Entry, bool) {
	if e, ok := t.Lookup(device); ok {
		return e, true
	}
	for _, e := range t {
		if !strings.HasPrefix(e.Device, "/") {
			continue
		}
		resolved, err := filepath.EvalSymlinks(e.Device)
		if err == nil && resolved == device {
			return e, true
		}
	}
	return Entry{}, false
}
