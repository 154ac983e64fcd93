package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitseed/gitseed/internal/activity"
	"github.com/gitseed/gitseed/internal/git"
)

var statusRepoPath string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show synthetic activity present in the repository",
	Long:  `Display how many commits in the current branch were created by gitseed.`,
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringVarP(&statusRepoPath, "repo-path", "r", "", "path to git repository (defaults to current directory)")
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	repoPath := statusRepoPath
	if repoPath == "" {
		var err error
		repoPath, err = os.Getwd()
		if err != nil {
			return err
		}
	}
	repo, err := git.NewClient(ctx, repoPath)
	if err != nil {
		return err
	}

	fmt.Printf("gitseed status\n")
	fmt.Printf("%s\n", strings.Repeat("─", 50))
	fmt.Printf("  Repository: %s\n", repoPath)

	branch, err := repo.CurrentBranch(ctx)
	if err == nil {
		fmt.Printf("  Branch:     %s\n", branch)
	}

	records, err := repo.Log(ctx)
	if err != nil {
		return err
	}
	synthetic := activity.FindRemovable(records)

	fmt.Printf("  Commits:    %d total, %d synthetic\n", len(records), len(synthetic))
	if len(synthetic) > 0 {
		// records are newest-first, so the first match is the latest
		fmt.Printf("  Latest:     %s\n", synthetic[0].Date.Format("2006-01-02 15:04:05"))
	}
	return nil
}
