/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for themeport.
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/themeport/cmd/convert"
	"bennypowers.dev/themeport/cmd/fields"
	"bennypowers.dev/themeport/cmd/show"
	"bennypowers.dev/themeport/cmd/validate"
	"bennypowers.dev/themeport/cmd/version"
	"bennypowers.dev/themeport/config"
	"bennypowers.dev/themeport/fs"
	"bennypowers.dev/themeport/internal/logger"
)

// EnvPrefix prefixes environment variables that override flags,
// e.g. THEMEPORT_JOBS=4.
const EnvPrefix = "THEMEPORT"

var rootCmd = &cobra.Command{
	Use:   "themeport",
	Short: "Convert legacy editor themes to Zed themes",
	Long: `themeport converts legacy colors/highlight theme files into Zed v0.2.0
theme files, filling every style field from a fixed table of fallbacks.`,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only output errors")

	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(fields.Cmd)
	rootCmd.AddCommand(show.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

// setup binds flags and THEMEPORT_* variables to viper, layers the config
// file underneath them and configures the logger.
func setup(cmd *cobra.Command, args []string) error {
	if err := bind(viper.GetViper(), cmd); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(fs.NewOSFileSystem(), ".")
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	cfg.SetDefaults(viper.GetViper())

	level := viper.GetString("log-level")
	if viper.GetBool("quiet") {
		level = "error"
	}
	if err := logger.SetLevel(level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return nil
}

func bind(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}
	if err := v.BindPFlags(cmd.InheritedFlags()); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}
	return nil
}
