package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gitseed/gitseed/internal/activity"
	"github.com/gitseed/gitseed/internal/git"
)

var (
	clearDryRun   bool
	clearRepoPath string
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all commits that only modified activity.log",
	Long: `Clear identifies every commit whose only change is the activity log
and rewrites the branch without them. Commits touching any other file are the
rollback boundary: the branch is reset to the oldest such commit.`,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearDryRun, "dry-run", "d", false, "preview what would be removed")
	clearCmd.Flags().StringVarP(&clearRepoPath, "repo-path", "r", "", "path to git repository (defaults to current directory)")
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	repoPath := clearRepoPath
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

	color.Cyan("\ngitseed - Clear Activity Commits\n")
	if clearDryRun {
		color.Yellow("DRY RUN MODE - no commits will be removed\n")
	}

	cleaner := activity.NewCleaner(repo, logger)
	result, err := cleaner.Clear(ctx, clearDryRun)
	if err != nil {
		return err
	}

	if result.Removed == 0 {
		color.Yellow("\nNo activity.log commits found to remove.")
		return nil
	}

	action := "removed"
	if clearDryRun {
		action = "would be removed"
	}
	color.Green("\n✓ %d commit(s) %s\n", result.Removed, action)

	if clearDryRun {
		color.Yellow("This was a dry run. No commits were removed.")
		fmt.Println("Remove --dry-run to actually remove commits.")
		return nil
	}

	color.Green("Activity commits have been removed.")
	fmt.Println("Use 'git log' to verify the commit history.")
	color.Red("\nWARNING: if these commits were already pushed, you will need to force push to update the remote.")
	return nil
}
