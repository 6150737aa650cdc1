/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package show provides the show command for themeport.
package show

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/themeport/cmd/render"
	"bennypowers.dev/themeport/convert"
	"bennypowers.dev/themeport/fs"
	"bennypowers.dev/themeport/parser"
	"bennypowers.dev/themeport/schema"
	"bennypowers.dev/themeport/theme"
)

// Cmd is the show cobra command.
var Cmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Preview the Zed style a legacy theme converts to",
	Long: `Convert a legacy theme in memory and print the resolved style of each
variant with colour swatches and the text/background contrast ratio.

Examples:
  themeport show themes/tokyonight.json
  themeport show --variant "Tokyo Night Storm" themes/tokyonight.json
  themeport show --variant 1 --format markdown themes/tokyonight.json`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("variant", "", "Only show the variant with this name or index")
	Cmd.Flags().String("format", "table", "Output format: table, markdown, json")
}

func run(cmd *cobra.Command, args []string) error {
	variantFlag, _ := cmd.Flags().GetString("variant")
	format, _ := cmd.Flags().GetString("format")

	switch format {
	case "table", "markdown", "json":
	default:
		return fmt.Errorf("unknown format %q: expected table, markdown or json", format)
	}

	doc, err := load(fs.NewOSFileSystem(), args[0])
	if err != nil {
		return err
	}

	variants, err := selectVariants(doc.Themes, variantFlag)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		doc.Themes = variants
		data, err := parser.Encode(doc, parser.DefaultIndent)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", args[0], err)
		}
		_, err = out.Write(data)
		return err
	case "markdown":
		return outputMarkdown(out, variants)
	default:
		return outputTable(out, variants)
	}
}

// load reads and converts a legacy theme file.
func load(filesystem fs.FileSystem, path string) (theme.TargetDocument, error) {
	raw, err := parser.ParseFile(filesystem, path)
	if err != nil {
		return theme.TargetDocument{}, fmt.Errorf("error reading %s: %w", path, err)
	}
	if schema.DetectVersion(raw, nil) == schema.ZedV0_2_0 {
		return theme.TargetDocument{}, fmt.Errorf("%s is already a %s theme", path, schema.ZedV0_2_0)
	}
	doc, err := convert.ConvertRaw(raw)
	if err != nil {
		return theme.TargetDocument{}, fmt.Errorf("error converting %s: %w", path, err)
	}
	return doc, nil
}

// selectVariants picks the variant named by sel, or by its zero-based index
// when no name matches. An empty sel selects every variant.
func selectVariants(variants []theme.TargetVariant, sel string) ([]theme.TargetVariant, error) {
	if sel == "" {
		return variants, nil
	}
	for _, v := range variants {
		if v.Name == sel {
			return []theme.TargetVariant{v}, nil
		}
	}
	if i, err := strconv.Atoi(sel); err == nil && i >= 0 && i < len(variants) {
		return []theme.TargetVariant{variants[i]}, nil
	}

	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = strconv.Quote(v.Name)
	}
	return nil, fmt.Errorf("no variant %q (available: %s)", sel, strings.Join(names, ", "))
}

// contrastLine describes the text/background contrast of a variant.
func contrastLine(style theme.Style) string {
	text, _ := style.Get("text")
	background, _ := style.Get("background")
	ratio, ok := render.Contrast(text, background)
	if !ok {
		return "contrast: n/a"
	}
	return fmt.Sprintf("contrast: %.2f:1 (text %s on %s)", ratio, text, background)
}

func outputTable(w io.Writer, variants []theme.TargetVariant) error {
	rn := render.NewRenderer(w)
	for i, v := range variants {
		if i > 0 {
			fmt.Fprintln(w)
		}
		rn.Heading(fmt.Sprintf("%s (%s)", v.Name, v.Appearance))
		fmt.Fprintln(w, contrastLine(v.Style))
		fmt.Fprintf(w, "%d syntax rules, %d players\n\n", len(v.Style.Syntax), len(v.Style.Players))

		background, _ := v.Style.Get("background")
		if err := rn.Table(render.ComputeRows(v.Style), background); err != nil {
			return err
		}
	}
	return nil
}

func outputMarkdown(w io.Writer, variants []theme.TargetVariant) error {
	for i, v := range variants {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "# %s\n\n", v.Name)
		fmt.Fprintf(w, "Appearance: %s. %s.\n\n", v.Appearance, contrastLine(v.Style))
		if err := render.Markdown(w, render.ComputeRows(v.Style), 2); err != nil {
			return err
		}
	}
	return nil
}
