/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fields provides the fields command for themeport.
package fields

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/themeport/convert"
)

// Cmd is the fields cobra command.
var Cmd = &cobra.Command{
	Use:   "fields",
	Short: "List the style fields a converted theme contains",
	Long: `List every style field of a converted theme with the source keys it is
read from and the value used when none of them is set.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("kind", "", "Filter by rule kind: lookup, alpha, constant")
	Cmd.Flags().String("format", "table", "Output format: table, json, markdown")
}

func run(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("kind")
	format, _ := cmd.Flags().GetString("format")

	rules, err := filterRules(convert.Fields, kind)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return outputJSON(out, rules)
	case "markdown":
		return outputMarkdown(out, rules)
	case "table":
		return outputTable(out, rules)
	default:
		return fmt.Errorf("unknown format %q: expected table, json or markdown", format)
	}
}

// filterRules keeps the rules of the named kind. An empty kind keeps all.
func filterRules(rules []convert.Rule, kind string) ([]convert.Rule, error) {
	if kind == "" {
		return rules, nil
	}
	switch kind {
	case "lookup", "alpha", "constant":
	default:
		return nil, fmt.Errorf("unknown kind %q: expected lookup, alpha or constant", kind)
	}
	filtered := make([]convert.Rule, 0)
	for _, r := range rules {
		if r.Kind.String() == kind {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func candidates(r convert.Rule) string {
	if len(r.Candidates) == 0 {
		return "-"
	}
	keys := make([]string, len(r.Candidates))
	for i, k := range r.Candidates {
		keys[i] = k.String()
	}
	return strings.Join(keys, " | ")
}

func outputTable(w io.Writer, rules []convert.Rule) error {
	fieldW, kindW, candW := 5, 4, 7
	for _, r := range rules {
		fieldW = max(fieldW, len(r.Field))
		kindW = max(kindW, len(r.Kind.String()))
		candW = max(candW, len(candidates(r)))
	}
	for _, r := range rules {
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %-*s  %s\n",
			fieldW, r.Field, kindW, r.Kind, candW, candidates(r), r.DefaultString()); err != nil {
			return err
		}
	}
	return nil
}

func outputJSON(w io.Writer, rules []convert.Rule) error {
	type ruleOutput struct {
		Field      string   `json:"field"`
		Kind       string   `json:"kind"`
		Candidates []string `json:"candidates"`
		Default    *string  `json:"default"`
	}

	output := make([]ruleOutput, 0, len(rules))
	for _, r := range rules {
		keys := make([]string, 0, len(r.Candidates))
		for _, k := range r.Candidates {
			keys = append(keys, k.String())
		}
		ro := ruleOutput{Field: r.Field, Kind: r.Kind.String(), Candidates: keys}
		if !r.Null {
			def := r.DefaultString()
			ro.Default = &def
		}
		output = append(output, ro)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputMarkdown(w io.Writer, rules []convert.Rule) error {
	fmt.Fprintln(w, "| Field | Kind | Sources | Default |")
	fmt.Fprintln(w, "|-------|------|---------|---------|")
	for _, r := range rules {
		cands := strings.ReplaceAll(candidates(r), "|", `\|`)
		def := strings.ReplaceAll(r.DefaultString(), "|", `\|`)
		if _, err := fmt.Fprintf(w, "| `%s` | %s | %s | `%s` |\n", r.Field, r.Kind, cands, def); err != nil {
			return err
		}
	}
	return nil
}
