package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oleg578/linecsv/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "linecsv",
	Short: "Parse CSV input record by record with line-tagged errors",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(flags.ConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
		flags.apply(cmd, &cfg)

		if err := logger.SetOptions(cfg.Logger); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
			os.Exit(1)
		}
		active = cfg
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

type rootFlags struct {
	ConfigPath         string
	LogLevel           string
	LogFile            string
	StrictQuoteNewline bool
	FieldsPerRecord    int
	ContinueOnError    bool
}

// apply copies explicitly set flags over the values loaded from the config file.
func (f *rootFlags) apply(cmd *cobra.Command, cfg *config) {
	set := cmd.Flags()
	if set.Changed("log.level") {
		cfg.Logger.Level = f.LogLevel
	}
	if set.Changed("log.file") {
		cfg.Logger.Filename = f.LogFile
		cfg.Logger.Stdout = false
	}
	if set.Changed("strict-quote-newline") {
		cfg.Parser.StrictQuoteNewline = f.StrictQuoteNewline
	}
	if set.Changed("fields") {
		cfg.Parser.FieldsPerRecord = f.FieldsPerRecord
	}
	if set.Changed("continue") {
		cfg.Parser.ContinueOnError = f.ContinueOnError
	}
}

var (
	flags  rootFlags
	active = defaultConfig()
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.ConfigPath, "config", "", "Configuration file path (yaml)")
	pf.StringVar(&flags.LogLevel, "log.level", "info", "Log level: debug, info, warn or error")
	pf.StringVar(&flags.LogFile, "log.file", "", "Write logs to this rotating file instead of stderr")
	pf.BoolVar(&flags.StrictQuoteNewline, "strict-quote-newline", false, "Reject a newline directly after a closing quote")
	pf.IntVar(&flags.FieldsPerRecord, "fields", -1, "Expected fields per record; 0 takes the first record's width, negative disables the check")
	pf.BoolVar(&flags.ContinueOnError, "continue", false, "Keep parsing after a malformed record")
}
