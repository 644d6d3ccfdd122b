package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.llib.dev/rangekit/pkg/logging"
)

// Cmd is the command line arguments shared by every source.
type Cmd struct {
	// ConfigPath is the path to an optional configuration file.
	ConfigPath string
	Start      uint
	Format     string
	LogLevel   string
}

func newRootCmd() *cobra.Command {
	var cmd Cmd

	rootCmd := &cobra.Command{
		Use:   "enumerate <source>",
		Short: "Print the elements of a source together with their index",
		Args:  cobra.ArbitraryArgs,
		RunE: func(rawCmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return rawCmd.Help()
			}
			return ErrUnknownSource.F("%q", args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cmd.ConfigPath, "config", "c", "", "Path to a YAML configuration file")
	flags.UintVar(&cmd.Start, "start", 0, "Offset added to every index")
	flags.StringVarP(&cmd.Format, "format", "f", FormatTSV, "Output format, tsv or json")
	flags.StringVar(&cmd.LogLevel, "log-level", "", "Minimum log level (debug, info, warn, error, fatal)")

	var reverse bool
	boltCmd := &cobra.Command{
		Use:   "bolt <db> <bucket>",
		Short: "Enumerate the entries of a bolt bucket in key order",
		Args:  cobra.ExactArgs(2),
		RunE: func(rawCmd *cobra.Command, args []string) error {
			s, err := newSession(rawCmd, cmd)
			if err != nil {
				return err
			}
			return runBolt(rawCmd.Context(), s, args[0], args[1], reverse)
		},
	}
	boltCmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Walk the bucket back from its last key")

	linesCmd := &cobra.Command{
		Use:   "lines [file]",
		Short: "Enumerate the lines of a file, or of stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(rawCmd *cobra.Command, args []string) error {
			s, err := newSession(rawCmd, cmd)
			if err != nil {
				return err
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return runLines(rawCmd.Context(), s, rawCmd.InOrStdin(), path)
		},
	}

	rootCmd.AddCommand(boltCmd, linesCmd)
	return rootCmd
}

// newSession resolves the configuration: flags override the config file, which overrides the defaults.
func newSession(rawCmd *cobra.Command, cmd Cmd) (session, error) {
	cfg := DefaultConfig()
	if cmd.ConfigPath != "" {
		var err error
		if cfg, err = LoadConfig(cmd.ConfigPath); err != nil {
			return session{}, err
		}
	}

	flags := rawCmd.Flags()
	if flags.Changed("start") {
		cfg.Start = cmd.Start
	}
	if flags.Changed("format") {
		cfg.Format = cmd.Format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = cmd.LogLevel
	}

	level, err := logging.LevelFromEnv()
	if err != nil {
		return session{}, err
	}
	if cfg.LogLevel != "" {
		if level, err = logging.ParseLevel(cfg.LogLevel); err != nil {
			return session{}, err
		}
	}

	out, err := newPrinter(cfg.Format, rawCmd.OutOrStdout())
	if err != nil {
		return session{}, err
	}

	return session{
		Config: cfg,
		Logger: &logging.Logger{Out: rawCmd.ErrOrStderr(), Level: level},
		Out:    out,
	}, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
