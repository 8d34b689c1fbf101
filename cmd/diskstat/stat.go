// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/diskstat"
	"cloudeng.io/errors"
	"cloudeng.io/file/diskusage"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
)

type statFlags struct {
	CommonFlags
	Config string `subcmd:"config,,'yaml file containing additional paths to report on'"`
}

// Config represents the optional configuration file.
type Config struct {
	Paths []string `yaml:"paths" cmd:"paths to report on in addition to those on the command line"`
}

type pathUsage struct {
	Path           string `json:"path" yaml:"path"`
	diskstat.Usage `yaml:",inline"`
}

func stat(ctx context.Context, values any, args []string) error {
	fv := values.(*statFlags)
	if err := fv.validate(); err != nil {
		return err
	}
	ctx, closer, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer closer()
	paths := args
	if len(fv.Config) > 0 {
		var cfg Config
		if err := cmdyaml.ParseConfigFile(ctx, fv.Config, &cfg); err != nil {
			return err
		}
		paths = append(paths, cfg.Paths...)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no paths specified")
	}
	results, err := statPaths(ctx, paths)
	if perr := fv.printUsage(stdout, results); perr != nil {
		return errors.NewM(err, perr)
	}
	return err
}

// statPaths obtains the usage for all of the paths concurrently, the
// returned slice contains only those that succeeded, in the order given.
func statPaths(ctx context.Context, paths []string) ([]pathUsage, error) {
	logger := ctxlog.Logger(ctx)
	results := make([]pathUsage, len(paths))
	ok := make([]bool, len(paths))
	var g errgroup.T
	for i, path := range paths {
		g.Go(func() error {
			u, err := diskstat.Stat(path)
			if err != nil {
				logger.Warn("stat failed", "path", path, "error", err)
				return err
			}
			logger.Info("stat", "path", path, "total", u.Total, "free", u.Free, "available", u.Available)
			results[i] = pathUsage{Path: path, Usage: u}
			ok[i] = true
			return nil
		})
	}
	err := g.Wait()
	succeeded := make([]pathUsage, 0, len(paths))
	for i, r := range results {
		if ok[i] {
			succeeded = append(succeeded, r)
		}
	}
	return succeeded, err
}

func (c *CommonFlags) printUsage(w io.Writer, results []pathUsage) error {
	if c.structured() {
		return c.printStructured(w, results)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "total\tfree\tavailable\tused\tpath\n")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f%%\t%s\n",
			c.size(r.Total), c.size(r.Free), c.size(r.Available),
			r.UsedPercent(), r.Path)
	}
	return tw.Flush()
}

func (c *CommonFlags) size(v uint64) string {
	if v > math.MaxInt64 {
		v = math.MaxInt64
	}
	if c.Binary {
		return diskusage.BinarySize(0, 2, int64(v))
	}
	return diskusage.DecimalSize(0, 2, int64(v))
}
