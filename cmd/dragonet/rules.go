package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arwah7/dragonet/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Validate and list the configured rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		set, err := rules.New(cfg.Rules)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderer().Rules(set.All()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
