// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pddikti CLI, a command-line
// client for the public PDDIKTI higher-education database API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pddikti/internal/render"
	"github.com/pdiddy/pddikti/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger carries request diagnostics to stderr. It is replaced in
// PersistentPreRunE once --verbose is known.
var logger = zerolog.Nop()

// rootCmd is the base command for the pddikti CLI.
var rootCmd = &cobra.Command{
	Use:   "pddikti",
	Short: "Search Indonesia's higher-education database (PDDIKTI)",
	Long: `pddikti queries the public PDDIKTI API for students (mahasiswa),
lecturers (dosen), institutions (perguruan tinggi), and study programs
(prodi), and prints what it finds.

Run without a subcommand, or with "search", to search every record type.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger = newLogger(verbose)
		return nil
	},
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := types.DefaultClientConfig()
	viper.SetDefault("base_url", defaults.BaseURL)
	viper.SetDefault("origin", defaults.Origin)
	viper.SetDefault("timeout", defaults.Timeout)
	viper.SetDefault("user_agent", defaults.UserAgent)
	viper.SetDefault("max_retries", defaults.MaxRetries)
	viper.SetDefault("rate_limit", defaults.RateLimit)
	viper.SetDefault("burst", defaults.Burst)
	viper.SetDefault("format", string(render.Pretty))

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./pddikti.yaml or ~/.config/pddikti/pddikti.yaml)")
	pf.BoolP("verbose", "v", false, "log requests to stderr")
	pf.StringP("format", "f", string(render.Pretty), "output format: pretty, json, yaml, or table")
	pf.String("base-url", defaults.BaseURL, "PDDIKTI API base URL")
	pf.Duration("timeout", defaults.Timeout, "per-request timeout")
	pf.Float64("rate-limit", defaults.RateLimit, "maximum requests per second (0 = unlimited)")

	for key, flag := range map[string]string{
		"format":     "format",
		"base_url":   "base-url",
		"timeout":    "timeout",
		"rate_limit": "rate-limit",
	} {
		cobra.CheckErr(viper.BindPFlag(key, pf.Lookup(flag)))
	}

	addSearchFlags(rootCmd)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pddikti")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pddikti"))
		}
	}

	viper.SetEnvPrefix("PDDIKTI")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// clientConfig resolves the client settings from flags, environment, config
// file, and defaults, in that order of precedence.
func clientConfig() types.ClientConfig {
	return types.ClientConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
		},
		BaseURL:    viper.GetString("base_url"),
		Origin:     viper.GetString("origin"),
		MaxRetries: viper.GetInt("max_retries"),
		RateLimit:  viper.GetFloat64("rate_limit"),
		Burst:      viper.GetInt("burst"),
	}
}

// outputFormat returns the validated --format value.
func outputFormat() (render.Format, error) {
	return render.ParseFormat(viper.GetString("format"))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
