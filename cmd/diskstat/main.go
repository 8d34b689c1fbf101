// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command diskstat reports the total, free and available space of the
// filesystems containing the specified paths, or of all labelled disks.
package main

import (
	"context"

	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

func init() {
	statCmd := subcmd.NewCommand("stat",
		subcmd.MustRegisterFlagStruct(&statFlags{}, nil, nil),
		stat, subcmd.AtLeastNArguments(0))
	statCmd.Document("display the capacity of the filesystems containing the specified paths", "<path>...")

	labelsCmd := subcmd.NewCommand("labels",
		subcmd.MustRegisterFlagStruct(&labelsFlags{}, nil, nil),
		labels, subcmd.ExactlyNumArguments(0))
	labelsCmd.Document("display the capacity of all labelled disks")

	mountsCmd := subcmd.NewCommand("mounts",
		subcmd.MustRegisterFlagStruct(&mountsFlags{}, nil, nil),
		mountTable, subcmd.ExactlyNumArguments(0))
	mountsCmd.Document("display the system mount table")

	cmdSet = subcmd.NewCommandSet(statCmd, labelsCmd, mountsCmd)
	cmdSet.Document(`display filesystem capacity.

Sizes are computed using the filesystem's fragment size. Free space includes
space reserved for the superuser, available space is that available to
unprivileged users.`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}
