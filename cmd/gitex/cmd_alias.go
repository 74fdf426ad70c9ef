package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/AndreaPallotta/gitex/internal/common"
	"github.com/AndreaPallotta/gitex/internal/gitops"
	"github.com/AndreaPallotta/gitex/internal/system"
)

var aliasCmd = &cobra.Command{
	Use:   "alias",
	Short: "Manage command aliases",
	Long: `Manage persistent command aliases.

Aliases are stored in the gitex config file and expanded shell-style when
run, with any extra arguments appended to the stored command.`,
}

var aliasAddCmd = &cobra.Command{
	Use:   "add <name> <command>",
	Short: "Add a new alias",
	Args:  cobra.ExactArgs(2),
	RunE:  runAliasAdd,
}

var aliasRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an alias",
	Args:  cobra.ExactArgs(1),
	RunE:  runAliasRemove,
}

var aliasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all defined aliases",
	Args:  cobra.NoArgs,
	RunE:  runAliasList,
}

var aliasClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all defined aliases",
	Args:  cobra.NoArgs,
	RunE:  runAliasClear,
}

var aliasRunCmd = &cobra.Command{
	Use:   "run <name> [args...]",
	Short: "Run the command behind an alias",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAliasRun,
}

func init() {
	aliasCmd.AddCommand(aliasAddCmd)
	aliasCmd.AddCommand(aliasRemoveCmd)
	aliasCmd.AddCommand(aliasListCmd)
	aliasCmd.AddCommand(aliasClearCmd)
	aliasCmd.AddCommand(aliasRunCmd)

	rootCmd.AddCommand(aliasCmd)
}

func runAliasAdd(cmd *cobra.Command, args []string) error {
	ctx, err := newAppContext()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	name, command := args[0], args[1]
	if err := common.ValidateAliasName(name); err != nil {
		return err
	}
	if err := common.ValidateNotEmpty(command); err != nil {
		return fmt.Errorf("alias command cannot be empty")
	}

	if err := ctx.Config.SetAlias(name, command); err != nil {
		return fmt.Errorf("failed to save alias: %w", err)
	}

	ctx.UI.Successf("Alias '%s' added for command '%s'", name, command)
	return nil
}

func runAliasRemove(cmd *cobra.Command, args []string) error {
	ctx, err := newAppContext()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	name := args[0]
	if err := ctx.Config.DeleteAlias(name); err != nil {
		return err
	}

	ctx.UI.Successf("Alias '%s' removed", name)
	return nil
}

func runAliasList(cmd *cobra.Command, args []string) error {
	ctx, err := newAppContext()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	aliases := ctx.Config.Aliases()
	if len(aliases) == 0 {
		ctx.UI.Info("No aliases defined")
		return nil
	}

	for _, name := range ctx.Config.AliasNames() {
		ctx.UI.Printf("%s: %s", name, aliases[name])
	}
	return nil
}

func runAliasClear(cmd *cobra.Command, args []string) error {
	ctx, err := newAppContext()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	aliases := ctx.Config.Aliases()
	if len(aliases) == 0 {
		ctx.UI.Info("No aliases defined")
		return nil
	}

	confirm, err := ctx.UI.PromptYesNo(fmt.Sprintf("Remove all %d alias(es)?", len(aliases)), true)
	if err != nil {
		return err
	}
	if !confirm {
		ctx.UI.Info("Clear cancelled")
		return nil
	}

	if err := ctx.Config.ClearAliases(); err != nil {
		return err
	}

	ctx.UI.Success("All aliases cleared")
	return nil
}

func runAliasRun(cmd *cobra.Command, args []string) error {
	ctx, err := newAppContext()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	name := args[0]
	command, err := ctx.Config.GetAlias(name)
	if err != nil {
		return err
	}

	argv, err := shellquote.Split(command)
	if err != nil {
		return fmt.Errorf("failed to parse alias command %q: %w", command, err)
	}
	argv = append(argv, args[1:]...)

	ctx.UI.Infof("Running: %s", strings.Join(argv, " "))

	// Aliases run in the repository when --path points at one, and in the
	// plain working directory when it is not a repository. Any other path
	// problem is surfaced instead of being papered over.
	var output string
	repo, repoErr := ctx.openRepo()
	switch {
	case repoErr == nil:
		output, err = repo.RunCommand(argv)
	case errors.Is(repoErr, gitops.ErrNotRepository):
		runner := system.NewCommandRunner()
		output, err = runner.Run(argv[0], argv[1:]...)
	default:
		return repoErr
	}

	if output != "" {
		ctx.UI.Print(strings.TrimRight(output, "\n"))
	}
	if err != nil {
		return fmt.Errorf("alias '%s' failed: %w", name, err)
	}
	return nil
}
