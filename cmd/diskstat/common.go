// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

var stdout io.Writer = os.Stdout

type CommonFlags struct {
	cmdutil.LoggingFlags
	Format string `subcmd:"format,text,'output format: text, json or yaml'"`
	Binary bool   `subcmd:"binary,false,'display sizes using binary (KiB, MiB etc) rather than decimal units'"`
}

// withLogger returns a context containing the logger configured by the
// logging flags and a function to be called to close it.
func (c *CommonFlags) withLogger(ctx context.Context) (context.Context, func(), error) {
	logger, err := c.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { logger.Close() }, nil
}

func (c *CommonFlags) structured() bool {
	switch c.Format {
	case "json", "yaml":
		return true
	}
	return false
}

func (c *CommonFlags) validate() error {
	switch c.Format {
	case "", "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unsupported output format: %q", c.Format)
}

// printStructured writes v as json or yaml.
func (c *CommonFlags) printStructured(w io.Writer, v any) error {
	switch c.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format: %q", c.Format)
}
