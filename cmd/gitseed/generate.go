package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/gitseed/gitseed/internal/activity"
	"github.com/gitseed/gitseed/internal/calendar"
	"github.com/gitseed/gitseed/internal/git"
	"github.com/gitseed/gitseed/internal/schedule"
)

var (
	genStartDate     string
	genEndDate       string
	genMinCommits    int
	genMaxCommits    int
	genWeekendWeight float64
	genWeekdayWeight float64
	genHolidayWeight float64
	genVacationWeeks int
	genDryRun        bool
	genRepoPath      string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate backdated commits across a date range",
	Long: `Generate creates trivial commits (appending to activity.log) with
backdated timestamps spread across the given date range. Weekends, holidays
and vacation weeks are weighted so the result looks like ordinary work.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genStartDate, "start-date", "s", "", "start date (e.g. '2024-01-01' or 'January 1, 2024')")
	generateCmd.Flags().StringVarP(&genEndDate, "end-date", "e", "", "end date (e.g. '2024-12-31' or 'December 31, 2024')")
	generateCmd.Flags().IntVarP(&genMinCommits, "min-commits", "n", 0, "minimum commits per day")
	generateCmd.Flags().IntVarP(&genMaxCommits, "max-commits", "x", 0, "maximum commits per day")
	generateCmd.Flags().Float64VarP(&genWeekendWeight, "weekend-weight", "w", 0, "multiplier for weekend activity (1.5 = 50% more, 0.5 = 50% less)")
	generateCmd.Flags().Float64Var(&genWeekdayWeight, "weekday-weight", 0, "weekday activity level (0.2 = few active weekdays per week)")
	generateCmd.Flags().Float64Var(&genHolidayWeight, "holiday-weight", 0, "multiplier for holiday activity (0.3 = 70% less)")
	generateCmd.Flags().IntVar(&genVacationWeeks, "vacation-weeks", 0, "vacation weeks per year (whole weeks with no commits)")
	generateCmd.Flags().BoolVarP(&genDryRun, "dry-run", "d", false, "preview commits without creating them")
	generateCmd.Flags().StringVarP(&genRepoPath, "repo-path", "r", "", "path to git repository (defaults to current directory)")

	generateCmd.MarkFlagRequired("start-date")
	generateCmd.MarkFlagRequired("end-date")
}

// flag values fall back to the loaded configuration unless set explicitly
func effectiveWeights(cmd *cobra.Command) schedule.Weights {
	w := cfg.Weights()
	if cmd.Flags().Changed("min-commits") {
		w.MinCommits = genMinCommits
	}
	if cmd.Flags().Changed("max-commits") {
		w.MaxCommits = genMaxCommits
	}
	if cmd.Flags().Changed("weekend-weight") {
		w.WeekendWeight = genWeekendWeight
	}
	if cmd.Flags().Changed("weekday-weight") {
		w.WeekdayWeight = genWeekdayWeight
	}
	if cmd.Flags().Changed("holiday-weight") {
		w.HolidayWeight = genHolidayWeight
	}
	if cmd.Flags().Changed("vacation-weeks") {
		w.VacationWeeksPerYear = genVacationWeeks
	}
	return w
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	weights := effectiveWeights(cmd)
	if err := weights.Validate(); err != nil {
		return err
	}

	start, err := dateparse.ParseLocal(genStartDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", genStartDate, err)
	}
	end, err := dateparse.ParseLocal(genEndDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", genEndDate, err)
	}

	dateRange, err := schedule.NewDateRange(start, end)
	if err != nil {
		return err
	}

	repoPath := genRepoPath
	if repoPath == "" {
		repoPath, err = os.Getwd()
		if err != nil {
			return err
		}
	}
	repo, err := git.NewClient(ctx, repoPath)
	if err != nil {
		return err
	}

	printRunHeader(repoPath, dateRange, weights)

	scheduler := schedule.New(weights, calendar.NewUnitedStates(), schedule.NewRand())
	generator := activity.NewGenerator(scheduler, repo, logger)

	// total is only known once scheduling is done, so the bar is created on
	// the first progress callback
	var bar *progressbar.ProgressBar
	description := "[green]Creating commits...[reset]"
	if genDryRun {
		description = "[yellow]Simulating commits...[reset]"
	}

	events, err := generator.Run(ctx, dateRange, genDryRun, func(current, total int, ts time.Time) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription(description),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}))
		}
		bar.Add(1)
	})
	if err != nil {
		return err
	}
	fmt.Println()

	verb := "created"
	if genDryRun {
		verb = "simulated"
	}
	color.Green("\n✓ Successfully %s %d commit(s)\n", verb, len(events))

	printSample(events)

	if genDryRun {
		color.Yellow("\nThis was a dry run. No commits were created.")
		fmt.Println("Remove --dry-run to create actual commits.")
	} else if len(events) > 0 {
		color.Green("\nCommits have been created with backdated timestamps.")
		fmt.Println("Use 'git log' to view the commit history.")
	}
	return nil
}

func printRunHeader(repoPath string, r schedule.DateRange, w schedule.Weights) {
	mode := "LIVE"
	if genDryRun {
		mode = "DRY RUN"
	}

	color.Cyan("\ngitseed - Git Activity Generator\n")
	fmt.Printf("%s\n", strings.Repeat("─", 50))
	fmt.Printf("  Repository:          %s\n", repoPath)
	fmt.Printf("  Date range:          %s to %s\n",
		r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
	fmt.Printf("  Commits per day:     %d - %d\n", w.MinCommits, w.MaxCommits)
	fmt.Printf("  Weekend weight:      %gx\n", w.WeekendWeight)
	fmt.Printf("  Weekday weight:      %gx\n", w.WeekdayWeight)
	fmt.Printf("  Holiday weight:      %gx\n", w.HolidayWeight)
	fmt.Printf("  Vacation weeks/year: %d\n", w.VacationWeeksPerYear)
	fmt.Printf("  Mode:                %s\n", mode)
	fmt.Println()
}

func printSample(events []time.Time) {
	if len(events) == 0 {
		return
	}

	sampleSize := len(events)
	if sampleSize > 10 {
		sampleSize = 10
	}
	fmt.Printf("Showing first %d commit(s):\n\n", sampleSize)
	for i, ts := range events[:sampleSize] {
		fmt.Printf("  %2d. %s (%s)\n", i+1, ts.Format("2006-01-02 15:04:05"), ts.Weekday())
	}
	if len(events) > sampleSize {
		fmt.Printf("\n  ... and %d more\n", len(events)-sampleSize)
	}
}
