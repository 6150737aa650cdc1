/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package batch converts many theme files with a bounded pool of workers.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"

	"bennypowers.dev/themeport/convert"
	"bennypowers.dev/themeport/fs"
	"bennypowers.dev/themeport/internal/logger"
	"bennypowers.dev/themeport/parser"
	"bennypowers.dev/themeport/schema"
)

// Status is the outcome of one file.
type Status int

const (
	// StatusConverted means the file was converted (and written unless dry-run).
	StatusConverted Status = iota
	// StatusSkipped means the file was left alone; see Result.Reason.
	StatusSkipped
	// StatusFailed means reading, parsing, converting or writing failed.
	StatusFailed
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusConverted:
		return "converted"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Skip reasons.
const (
	ReasonSkipList         = "skip list"
	ReasonAlreadyConverted = "already converted"
)

// Result describes what happened to one input file.
type Result struct {
	Path string
	// Output is the destination path. Empty when the document was only
	// returned in Data. Nothing is written there during a dry run.
	Output   string
	Status   Status
	Reason   string
	Err      error
	Variants int
	// Data holds the encoded document of a converted file.
	Data []byte
}

// Report collects the results of a run in input order.
type Report struct {
	Results []Result
}

// Count returns the number of results with status s.
func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// Failed returns the number of failed files.
func (r *Report) Failed() int {
	return r.Count(StatusFailed)
}

// Driver converts theme files read from FS.
//
// Destination precedence for each file: OutputFor, then OutDir/<base name>,
// then the input path itself when InPlace is set. With none of these the
// converted bytes are only returned in Result.Data.
type Driver struct {
	FS fs.FileSystem

	// Skip lists base names that are never converted.
	Skip []string

	OutDir  string
	InPlace bool

	// OutputFor optionally maps an input path to its own output path.
	// An empty return falls through to OutDir and InPlace.
	OutputFor func(path string) string

	// Indent is passed to parser.Encode.
	Indent int

	// Jobs bounds the number of files converted at once. Values below 1
	// mean 1.
	Jobs int

	// Force converts documents that are already in the Zed schema.
	Force bool

	// DryRun converts without writing anything.
	DryRun bool
}

// Run converts paths and returns one result per dispatched path, in input
// order. A cancelled ctx stops dispatch; results of files already in flight
// are kept and ctx's error is returned alongside the partial report.
func (d *Driver) Run(ctx context.Context, paths []string) (*Report, error) {
	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(d.Jobs, 1))

	dispatched := 0
	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i] = d.ConvertFile(path)
			return nil
		})
		dispatched++
	}
	_ = g.Wait()

	report := &Report{Results: results[:dispatched]}
	for _, res := range report.Results {
		d.logResult(res)
	}
	return report, ctx.Err()
}

// ConvertFile converts a single file and writes it to its destination.
func (d *Driver) ConvertFile(path string) Result {
	res := Result{Path: path}

	if slices.Contains(d.Skip, filepath.Base(path)) {
		res.Status = StatusSkipped
		res.Reason = ReasonSkipList
		return res
	}

	raw, err := parser.ParseFile(d.FS, path)
	if err != nil {
		return failed(res, err)
	}

	if !d.Force && schema.DetectVersion(raw, nil) == schema.ZedV0_2_0 {
		res.Status = StatusSkipped
		res.Reason = ReasonAlreadyConverted
		return res
	}

	doc, err := convert.ConvertRaw(raw)
	if err != nil {
		return failed(res, err)
	}
	res.Variants = len(doc.Themes)

	data, err := parser.Encode(doc, d.Indent)
	if err != nil {
		return failed(res, fmt.Errorf("encoding: %w", err))
	}
	res.Data = data
	res.Status = StatusConverted

	dest := d.destination(path)
	if dest == "" {
		return res
	}
	if !d.DryRun {
		if err := d.write(path, dest, data); err != nil {
			return failed(res, fmt.Errorf("writing %s: %w", dest, err))
		}
	}
	res.Output = dest
	return res
}

func (d *Driver) destination(path string) string {
	if d.OutputFor != nil {
		if out := d.OutputFor(path); out != "" {
			return out
		}
	}
	if d.OutDir != "" {
		return filepath.Join(d.OutDir, filepath.Base(path))
	}
	if d.InPlace {
		return path
	}
	return ""
}

// write stores data at dest. Overwriting the input goes through a sibling
// temporary file so a failed write never truncates the source theme.
func (d *Driver) write(src, dest string, data []byte) error {
	if dir := filepath.Dir(dest); dir != "." {
		if err := d.FS.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if filepath.Clean(src) != filepath.Clean(dest) {
		return d.FS.WriteFile(dest, data, 0o644)
	}

	tmp := dest + ".themeport.tmp"
	if err := d.FS.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := d.FS.Rename(tmp, dest); err != nil {
		_ = d.FS.Remove(tmp)
		return err
	}
	return nil
}

func failed(res Result, err error) Result {
	res.Status = StatusFailed
	res.Err = err
	res.Data = nil
	return res
}

func (d *Driver) logResult(res Result) {
	switch res.Status {
	case StatusConverted:
		switch {
		case res.Output != "" && d.DryRun:
			logger.Info("Would convert %s -> %s (%d variants)", res.Path, res.Output, res.Variants)
		case res.Output != "":
			logger.Info("Converted %s -> %s (%d variants)", res.Path, res.Output, res.Variants)
		default:
			logger.Debug("Converted %s (%d variants)", res.Path, res.Variants)
		}
	case StatusSkipped:
		logger.Info("Skipped %s: %s", res.Path, res.Reason)
	case StatusFailed:
		logger.Error("Error converting %s: %v", res.Path, res.Err)
	}
}
