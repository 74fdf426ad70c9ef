package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AndreaPallotta/gitex/internal/config"
	"github.com/AndreaPallotta/gitex/internal/gitops"
	"github.com/AndreaPallotta/gitex/internal/ui"
	"github.com/AndreaPallotta/gitex/pkg/version"
)

var (
	// Persistent flags
	repoPath       string
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "gitex",
	Short: "Git helper with batched push, cherry-picking, and aliases",
	Long: `gitex wraps everyday git workflows into single commands.

Commands:
- Batched push (add, commit, push in one step)
- Pull
- Cherry-picking with interactive commit selection
- Persistent command aliases
- Self-installation of the prebuilt binary

Repository commands look for a .git directory under --path (default: the
current directory).`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&repoPath, "path", "p", ".", "Target path to search for a git repository")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Run without prompting; prompts resolve to their defaults")

	rootCmd.AddCommand(versionCmd)
}

// appContext holds the dependencies shared by all commands
type appContext struct {
	Config *config.Config
	UI     *ui.UI
}

func newAppContext() (*appContext, error) {
	cfg := config.New("")
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	uiInstance := ui.New()
	uiInstance.SetNonInteractive(nonInteractive)

	return &appContext{
		Config: cfg,
		UI:     uiInstance,
	}, nil
}

// openRepo opens the repository selected by the --path flag
func (ctx *appContext) openRepo() (*gitops.Repo, error) {
	return gitops.Open(repoPath)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
