package main

import (
	"github.com/spf13/cobra"

	"github.com/zeusync/geogeo/internal/injector"
	"github.com/zeusync/geogeo/internal/scene"
)

func newCheckCommand(root *rootOptions) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "check <scene.yaml|scene.json>",
		Short: "Test the shapes of a scene file against each other",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := scene.LoadFile(args[0])
			if err != nil {
				return err
			}
			s, err := injector.InitializeScene(cfg)
			if err != nil {
				return err
			}
			report, err := s.Evaluate(cmd.Context(), workers)
			if err != nil {
				return err
			}
			return root.encode(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", defaultWorkers(), "maximum number of pairs tested concurrently")
	return cmd
}
