package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-motion/internal/storage"
)

var (
	flagJournalLimit int
	flagJournalStats bool
	flagJournalClear bool
)

var journalCmd = &cobra.Command{
	Use:   "journal [label]",
	Short: "Show recorded animation runs",
	Long: `Display the most recent finished animations, optionally for one label.

Examples:
  motion journal
  motion journal width --limit 5
  motion journal --stats
  motion journal fade --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runJournal,
}

func init() {
	journalCmd.Flags().IntVar(&flagJournalLimit, "limit", 10, "Number of runs to show")
	journalCmd.Flags().BoolVar(&flagJournalStats, "stats", false, "Show per-label statistics instead of runs")
	journalCmd.Flags().BoolVar(&flagJournalClear, "clear", false, "Delete the runs for label (all runs when no label)")
}

func runJournal(_ *cobra.Command, args []string) {
	label := ""
	if len(args) > 0 {
		label = args[0]
	}

	cfg := loadConfig()
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagJournalClear:
		if err := store.ClearRuns(label); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Journal cleared.")
	case flagJournalStats:
		printStats(store)
	default:
		printRuns(store, label)
	}
}

func printRuns(store *storage.Store, label string) {
	runs, err := store.RecentRuns(label, flagJournalLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if label == "" {
		fmt.Println("Recent runs")
	} else {
		fmt.Printf("Recent runs - %s\n", label)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'motion demo' to record the first one!")
		return
	}

	fmt.Printf("  %-10s  %-8s  %-8s  %-5s  %s\n", "Label", "Scene", "Duration", "Ticks", "Date")
	fmt.Printf("  %-10s  %-8s  %-8s  %-5s  %s\n", "-----", "-----", "--------", "-----", "----")
	for _, r := range runs {
		fmt.Printf("  %-10s  %-8s  %-8s  %-5d  %s\n",
			r.Label, r.Scene, fmt.Sprintf("%dms", r.DurationMS), r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if total, err := store.CountRuns(label); err == nil {
		fmt.Printf("Total: %d\n", total)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	labels := make([]string, 0, len(stats))
	for l := range stats {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	fmt.Printf("  %-10s  %-5s  %-9s  %-9s  %s\n", "Label", "Runs", "Avg ticks", "Max ticks", "Last run")
	fmt.Printf("  %-10s  %-5s  %-9s  %-9s  %s\n", "-----", "----", "---------", "---------", "--------")
	for _, l := range labels {
		st := stats[l]
		fmt.Printf("  %-10s  %-5d  %-9.1f  %-9d  %s\n",
			st.Label, st.Runs, st.AvgTicks, st.MaxTicks, st.LastRun.Format("2006-01-02 15:04"))
	}
}
