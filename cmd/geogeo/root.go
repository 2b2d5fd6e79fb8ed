package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/geogeo/internal/core/observability/log"
)

type rootOptions struct {
	logLevel string
	format   string
	logger   *log.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "geogeo",
		Short:         "2D collision checks for boxes, circles and polygons",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := log.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			if opts.format != "yaml" && opts.format != "json" {
				return fmt.Errorf("unknown output format %q", opts.format)
			}
			opts.logger = log.New(level)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.format, "format", "yaml", "output format (yaml, json)")

	cmd.AddCommand(
		newCheckCommand(opts),
		newInspectCommand(opts),
		newHullCommand(opts),
	)
	return cmd
}

func (o *rootOptions) encode(w io.Writer, v any) error {
	if o.format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func defaultWorkers() int { return runtime.GOMAXPROCS(0) }
