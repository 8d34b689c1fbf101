// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"cloudeng.io/diskstat/mounts"
)

type mountsFlags struct {
	CommonFlags
	MountTable string `subcmd:"mounts,/proc/mounts,the system mount table"`
}

func mountTable(ctx context.Context, values any, _ []string) error {
	fv := values.(*mountsFlags)
	if err := fv.validate(); err != nil {
		return err
	}
	ctx, closer, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer closer()
	table, err := mounts.ParseFile(ctx, fv.MountTable)
	if err != nil {
		return err
	}
	return fv.printTable(stdout, table)
}

func (c *CommonFlags) printTable(w io.Writer, table mounts.Table) error {
	if c.structured() {
		return c.printStructured(w, table)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "device\tmount point\ttype\toptions\n")
	for _, e := range table {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Device, e.MountPoint, e.FSType, strings.Join(e.Options, ","))
	}
	return tw.Flush()
}
