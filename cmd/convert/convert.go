/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert provides the convert command for themeport.
package convert

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/themeport/batch"
	"bennypowers.dev/themeport/config"
	"bennypowers.dev/themeport/fs"
	"bennypowers.dev/themeport/internal/logger"
)

// Cmd is the convert cobra command.
var Cmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert legacy themes to Zed themes",
	Long: `Convert legacy colors/highlight theme files to Zed v0.2.0 theme files.

Files on the skip list and files that are already Zed themes are left alone.
A single file with no output option is written to stdout.

Examples:
  # Print the converted theme
  themeport convert themes/tokyonight.json

  # Convert to a specific file
  themeport convert -o zed/tokyonight.json themes/tokyonight.json

  # Convert a directory of themes into another directory, four at a time
  themeport convert --out-dir zed -j 4 'themes/*.json'

  # Overwrite the inputs, leaving two themes untouched
  themeport convert --in-place --skip catppuccin.json --skip gruvbox.json themes/*.json

  # Use files, skip list and output options from .config/themeport.yaml
  themeport convert`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file (single input only; default: stdout)")
	Cmd.Flags().String("out-dir", "", "Write converted files to this directory")
	Cmd.Flags().BoolP("in-place", "i", false, "Overwrite input files with converted output")
	Cmd.Flags().StringSlice("skip", nil, "File base name to leave unconverted (repeatable)")
	Cmd.Flags().Int("indent", 2, "Spaces per JSON indentation level")
	Cmd.Flags().IntP("jobs", "j", 1, "Number of files to convert concurrently")
	Cmd.Flags().Bool("force", false, "Convert files that are already Zed themes")
	Cmd.Flags().Bool("dry-run", false, "Convert without writing any files")
}

// options are the resolved settings of one convert invocation.
type options struct {
	Output  string
	OutDir  string
	InPlace bool
	Skip    []string
	Indent  int
	Jobs    int
	Force   bool
	DryRun  bool
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	// Config file values arrive through viper defaults set by the root command
	opts := options{
		Output:  output,
		OutDir:  viper.GetString("out-dir"),
		InPlace: viper.GetBool("in-place"),
		Skip:    viper.GetStringSlice("skip"),
		Indent:  viper.GetInt("indent"),
		Jobs:    viper.GetInt("jobs"),
		Force:   viper.GetBool("force"),
		DryRun:  dryRun,
	}
	if err := opts.validate(); err != nil {
		return err
	}

	filesystem := fs.NewOSFileSystem()
	cfg, err := config.LoadOrDefault(filesystem, ".")
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	return convertFiles(cmd.Context(), filesystem, cfg, ".", args, opts, cmd.OutOrStdout())
}

// validate rejects flag combinations with more than one output policy.
func (o options) validate() error {
	if o.InPlace && o.Output != "" {
		return fmt.Errorf("--in-place and --output are mutually exclusive")
	}
	if o.InPlace && o.OutDir != "" {
		return fmt.Errorf("--in-place and --out-dir are mutually exclusive")
	}
	if o.Output != "" && o.OutDir != "" {
		return fmt.Errorf("--output and --out-dir are mutually exclusive")
	}
	if o.Jobs < 0 {
		return fmt.Errorf("--jobs must not be negative")
	}
	return nil
}

// convertFiles resolves the input files, runs the batch driver and writes
// documents without a destination to stdout.
func convertFiles(
	ctx context.Context,
	filesystem fs.FileSystem,
	cfg *config.Config,
	rootDir string,
	args []string,
	opts options,
	stdout io.Writer,
) error {
	var files []string
	var err error
	if len(args) == 0 {
		files, err = cfg.ExpandFiles(filesystem, rootDir)
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
	} else {
		files, err = config.ExpandPatterns(filesystem, rootDir, args)
		if err != nil {
			return fmt.Errorf("error expanding arguments: %w", err)
		}
	}

	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}
	if opts.Output != "" && len(files) > 1 {
		return fmt.Errorf("--output requires a single input file, got %d", len(files))
	}

	outputFor := func(path string) string {
		if opts.Output != "" {
			return opts.Output
		}
		return cfg.OutputFor(rootDir, path)
	}

	if !opts.InPlace && opts.OutDir == "" && opts.Output == "" {
		unplaced := 0
		for _, f := range files {
			if outputFor(f) == "" && !slices.Contains(opts.Skip, filepath.Base(f)) {
				unplaced++
			}
		}
		if unplaced > 1 {
			return fmt.Errorf("%d files have no destination: use --out-dir, --in-place or per-file outputs in config", unplaced)
		}
	}

	driver := &batch.Driver{
		FS:        filesystem,
		Skip:      opts.Skip,
		OutDir:    opts.OutDir,
		InPlace:   opts.InPlace,
		OutputFor: outputFor,
		Indent:    opts.Indent,
		Jobs:      opts.Jobs,
		Force:     opts.Force,
		DryRun:    opts.DryRun,
	}

	report, err := driver.Run(ctx, files)
	if report != nil {
		for _, res := range report.Results {
			if res.Status == batch.StatusConverted && res.Output == "" {
				if _, werr := stdout.Write(res.Data); werr != nil {
					return fmt.Errorf("error writing to stdout: %w", werr)
				}
			}
		}
		logger.Debug("%d converted, %d skipped, %d failed",
			report.Count(batch.StatusConverted), report.Count(batch.StatusSkipped), report.Failed())
	}
	if err != nil {
		return err
	}

	if failures := report.Failed(); failures > 0 {
		return fmt.Errorf("failed to convert %d file(s)", failures)
	}
	return nil
}
