/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for themeport.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/themeport/config"
	convertlib "bennypowers.dev/themeport/convert"
	"bennypowers.dev/themeport/fs"
	"bennypowers.dev/themeport/internal/logger"
	"bennypowers.dev/themeport/parser"
	"bennypowers.dev/themeport/schema"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Check that theme files can be converted",
	Long: `Parse theme files, detect their schema and check the structure the
converter relies on. Files that are already Zed themes are reported as such.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

// Summary describes one valid file.
type Summary struct {
	Schema   schema.Version
	Variants int
}

func run(cmd *cobra.Command, args []string) error {
	quiet := viper.GetBool("quiet")

	filesystem := fs.NewOSFileSystem()

	// Use config files if no args provided
	files := args
	if len(files) == 0 {
		cfg, err := config.LoadOrDefault(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		expanded, err := cfg.ExpandFiles(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
		files = expanded
	}

	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	out := cmd.OutOrStdout()
	failures := 0
	for _, file := range files {
		if !quiet {
			fmt.Fprintf(out, "Validating %s...\n", file)
		}

		summary, err := ValidateFile(filesystem, file)
		if err != nil {
			logger.Error("Error validating %s: %v", file, err)
			failures++
			continue
		}

		if !quiet {
			fmt.Fprintf(out, "  %d variants, schema: %s\n", summary.Variants, summary.Schema)
		}
	}

	if failures > 0 {
		return fmt.Errorf("validation failed for %d file(s)", failures)
	}

	if !quiet {
		fmt.Fprintln(out, "All files valid.")
	}
	return nil
}

// ValidateFile parses path and checks that it is either a Zed theme or a
// legacy theme the converter accepts.
func ValidateFile(filesystem fs.FileSystem, path string) (Summary, error) {
	raw, err := parser.ParseFile(filesystem, path)
	if err != nil {
		return Summary{}, err
	}

	version := schema.DetectVersion(raw, &schema.DetectionConfig{DefaultVersion: schema.Legacy})
	if version == schema.ZedV0_2_0 {
		themes, _ := raw["themes"].([]any)
		return Summary{Schema: version, Variants: len(themes)}, nil
	}

	doc, err := convertlib.ConvertRaw(raw)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Schema: schema.Legacy, Variants: len(doc.Themes)}, nil
}
