package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AndreaPallotta/gitex/internal/common"
	"github.com/AndreaPallotta/gitex/internal/gitops"
	"github.com/AndreaPallotta/gitex/internal/ui"
)

var (
	cherryPickCommits []string
	cherryPickBranch  string
	autoResolve       bool
	interactivePick   bool
)

var cherryPickCmd = &cobra.Command{
	Use:   "cherry-pick",
	Short: "Cherry-pick commits onto a target branch",
	Long: `Check out the target branch and cherry-pick the given commits in order.

On a conflict the sequence is aborted, unless --auto-resolve is set, in
which case the conflicting commit is skipped and picking continues.

With --interactive the repository log is shown and commits are selected
from a list instead of being passed with --commit.`,
	Args: cobra.NoArgs,
	RunE: runCherryPick,
}

func init() {
	cherryPickCmd.Flags().StringArrayVarP(&cherryPickCommits, "commit", "c", nil, "Commit to cherry-pick (repeatable)")
	cherryPickCmd.Flags().StringVarP(&cherryPickBranch, "branch", "b", "", "Target branch for cherry-picking")
	cherryPickCmd.Flags().BoolVar(&autoResolve, "auto-resolve", false, "Skip conflicting commits instead of aborting")
	cherryPickCmd.Flags().BoolVarP(&interactivePick, "interactive", "i", false, "Select commits from the repository log")

	rootCmd.AddCommand(cherryPickCmd)
}

func runCherryPick(cmd *cobra.Command, args []string) error {
	ctx, err := newAppContext()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	repo, err := ctx.openRepo()
	if err != nil {
		return err
	}

	if cherryPickBranch == "" && interactivePick {
		cherryPickBranch, err = ctx.UI.PromptInput("Target branch", "")
		if err != nil {
			return err
		}
	}
	if cherryPickBranch == "" {
		return fmt.Errorf("a target branch is required (--branch)")
	}
	if err := common.ValidateBranchName(cherryPickBranch); err != nil {
		return err
	}

	for _, ref := range cherryPickCommits {
		if err := common.ValidateCommitRef(ref); err != nil {
			return err
		}
	}

	commits := cherryPickCommits
	if interactivePick {
		commits, err = selectCommits(repo, ctx.UI)
		if err != nil {
			return err
		}
	}
	if len(commits) == 0 {
		return fmt.Errorf("no commits to cherry-pick (use --commit or --interactive)")
	}

	return cherryPick(repo, ctx.UI, commits, cherryPickBranch)
}

// selectCommits shows the repository log and lets the user pick commits
func selectCommits(repo *gitops.Repo, out *ui.UI) ([]string, error) {
	log, err := repo.Log()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve commit list: %w", err)
	}
	if len(log) == 0 {
		return nil, fmt.Errorf("repository has no commits")
	}

	options := make([]string, len(log))
	for i, commit := range log {
		options[i] = commit.String()
	}

	indices, err := out.PromptMultiSelect("Select commits to cherry-pick", options)
	if err != nil {
		return nil, fmt.Errorf("commit selection failed: %w", err)
	}

	var commits []string
	for _, idx := range indices {
		commits = append(commits, log[idx].Hash)
	}
	return commits, nil
}

// cherryPick applies the commits onto the target branch and reports the
// outcome
func cherryPick(repo *gitops.Repo, out *ui.UI, commits []string, branch string) error {
	out.Infof("Cherry-picking %d commit(s) onto %s", len(commits), branch)

	result, err := repo.CherryPickAll(commits, branch, autoResolve)
	for _, commit := range result.Skipped {
		out.Warningf("Skipped commit %s due to conflicts", commit)
	}
	if err != nil {
		return err
	}

	out.Successf("Cherry-picked %d commit(s) onto %s", len(result.Picked), branch)
	return nil
}
