// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package mounts provides support for reading the system mount table
// and for enumerating labelled disks along with their capacity.
package mounts

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cloudeng.io/file"
)

// ProcMounts is the location of the Linux mount table.
const ProcMounts = "/proc/mounts"

const numFields = 6

// maxLineSize bounds a single mount table line, overlay mounts with
// many lower directories can exceed bufio.MaxScanTokenSize.
const maxLineSize = 4 << 20

// Entry represents a single line in the mount table.
type Entry struct {
	Device     string   `json:"device" yaml:"device"`
	MountPoint string   `json:"mount_point" yaml:"mount_point"`
	FSType     string   `json:"fs_type" yaml:"fs_type"`
	Options    []string `json:"options" yaml:"options"`
	Freq       int      `json:"freq" yaml:"freq"`
	Pass       int      `json:"pass" yaml:"pass"`
}

// Table represents a parsed mount table.
type Table []Entry

// Lookup returns the first entry for the specified device.
func (t Table) Lookup(device string) (Entry, bool) {
	for _, e := range t {
		if e.Device == device {
			return e, true
		}
	}
	return Entry{}, false
}

// Parse parses a mount table in the format used by /proc/mounts and
// fstab. Blank lines, comments and lines with fewer than six fields
// are ignored.
func Parse(rd io.Reader) (Table, error) {
	var table Table
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	lineno := 0
	for sc.Scan() {
		lineno++
		fields := strings.Fields(sc.Text())
		if len(fields) < numFields || strings.HasPrefix(fields[0], "#") {
			continue
		}
		freq, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("line %v: invalid dump frequency: %q", lineno, fields[4])
		}
		pass, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("line %v: invalid pass number: %q", lineno, fields[5])
		}
		table = append(table, Entry{
			Device:     Unescape(fields[0]),
			MountPoint: Unescape(fields[1]),
			FSType:     fields[2],
			Options:    strings.Split(fields[3], ","),
			Freq:       freq,
			Pass:       pass,
		})
	}
	return table, sc.Err()
}

// ParseFile reads and parses the named mount table using file.FSReadFile,
// hence an fs.ReadFileFS stored in the context will be used in preference
// to the local filesystem.
func ParseFile(ctx context.Context, filename string) (Table, error) {
	buf, err := file.FSReadFile(ctx, filename)
	if err != nil {
		return nil, err
	}
	table, err := Parse(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return table, nil
}

// Unescape decodes the escape sequences used for whitespace and other
// special characters in mount table and udev link names, namely
// three digit octal escapes (eg. \040 for a space) and two digit
// hex escapes (eg. \x20). Malformed escapes are left as is.
func Unescape(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var out strings.Builder
	out.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			out.WriteByte(s[i])
			continue
		}
		if b, n, ok := decodeEscape(s[i+1:]); ok {
			out.WriteByte(b)
			i += n
			continue
		}
		out.WriteByte(s[i])
	}
	return out.String()
}

func decodeEscape(s string) (byte, int, bool) {
	if len(s) >= 3 && (s[0] == 'x' || s[0] == 'X') {
		v, err := strconv.ParseUint(s[1:3], 16, 8)
		if err != nil {
			return 0, 0, false
		}
		return byte(v), 3, true
	}
	if len(s) >= 3 {
		v, err := strconv.ParseUint(s[:3], 8, 8)
		if err != nil {
			return 0, 0, false
		}
		return byte(v), 3, true
	}
	return 0, 0, false
}
