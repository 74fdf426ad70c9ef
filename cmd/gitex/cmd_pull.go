package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull the latest changes",
	Args:  cobra.NoArgs,
	RunE:  runPull,
}

func init() {
	rootCmd.AddCommand(pullCmd)
}

func runPull(cmd *cobra.Command, args []string) error {
	ctx, err := newAppContext()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	repo, err := ctx.openRepo()
	if err != nil {
		return err
	}

	ctx.UI.Infof("Repository: %s", repo.Dir())
	ctx.UI.Info("Pulling latest changes...")

	output, err := repo.Pull()
	if err != nil {
		return err
	}
	if output != "" {
		ctx.UI.Print(strings.TrimRight(output, "\n"))
	}

	ctx.UI.Success("Pull completed")
	return nil
}
