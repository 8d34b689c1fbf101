// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"cloudeng.io/diskstat/mounts"
	"cloudeng.io/errors"
)

type labelsFlags struct {
	CommonFlags
	LabelDir   string `subcmd:"label-dir,/dev/disk/by-label,directory containing links from disk labels to devices"`
	MountTable string `subcmd:"mounts,/proc/mounts,the system mount table"`
}

func labels(ctx context.Context, values any, _ []string) error {
	fv := values.(*labelsFlags)
	if err := fv.validate(); err != nil {
		return err
	}
	ctx, closer, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer closer()
	disks, err := mounts.Disks(ctx, mounts.Options{
		LabelDir:   fv.LabelDir,
		MountTable: fv.MountTable,
	})
	if disks == nil {
		return err
	}
	if perr := fv.printDisks(stdout, disks); perr != nil {
		return errors.NewM(err, perr)
	}
	return err
}

func (c *CommonFlags) printDisks(w io.Writer, disks []mounts.Disk) error {
	if c.structured() {
		return c.printStructured(w, disks)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "label\tdevice\ttotal\tfree\tavailable\tused\tmounted on\n")
	for _, d := range disks {
		if !d.Mounted() {
			fmt.Fprintf(tw, "%s\t%s\t-\t-\t-\t-\t\n", d.Label, d.Device)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.1f%%\t%s\n",
			d.Label, d.Device, c.size(d.Total), c.size(d.Free),
			c.size(d.Available), d.UsedPercent(), d.MountPoint)
	}
	return tw.Flush()
}
