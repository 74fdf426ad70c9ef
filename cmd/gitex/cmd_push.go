package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AndreaPallotta/gitex/internal/config"
)

var commitMessage string

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Add all changes, commit, and push",
	Long: `Stage all changes, commit them with the given message, and push the
current branch. The default commit message can be changed by setting
DEFAULT_COMMIT_MESSAGE in the gitex config file.`,
	Args: cobra.NoArgs,
	RunE: runPush,
}

func init() {
	pushCmd.Flags().StringVarP(&commitMessage, "message", "m", "", "Commit message (defaults to the configured message)")

	rootCmd.AddCommand(pushCmd)
}

func runPush(cmd *cobra.Command, args []string) error {
	ctx, err := newAppContext()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	repo, err := ctx.openRepo()
	if err != nil {
		return err
	}

	message := commitMessage
	if message == "" {
		message = ctx.Config.GetOrDefault(config.KeyDefaultCommitMessage, "Default commit")
	}

	ctx.UI.Infof("Repository: %s", repo.Dir())

	ctx.UI.Info("Staging all changes...")
	if err := repo.AddAll(); err != nil {
		return err
	}

	ctx.UI.Infof("Committing with message: %s", message)
	if err := repo.Commit(message); err != nil {
		return err
	}

	ctx.UI.Info("Pushing...")
	if err := repo.Push(); err != nil {
		return err
	}

	ctx.UI.Success("Changes pushed")
	return nil
}
