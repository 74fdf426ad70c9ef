package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AndreaPallotta/gitex/internal/installer"
)

var installSource string

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the prebuilt gitex binary onto this machine",
	Long: `Install the prebuilt gitex binary from ./dist onto this machine.

On Unix-like systems the binary is copied to /usr/bin/gitex and marked
executable. On Windows it is copied to C:\GitEx and that directory is added
to the machine-wide PATH; the command relaunches itself with administrator
rights if needed.

Re-running the installer overwrites the installed binary and never adds a
duplicate PATH entry.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installSource, "source", installer.DefaultSource, "Path of the prebuilt binary to install")

	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	ctx, err := newAppContext()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	inst := installer.New(ctx.Config, ctx.UI, installer.Options{Source: installSource})
	return inst.Run()
}
