package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sonikratika023-droid/livepulse-automated/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dataset statistics without launching the dashboard",
	Long: `Fetch the articles table once and print headline numbers: totals,
sentiment breakdown, and the most active sources and topics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, articleCache, override, err := buildDataSources()
		if err != nil {
			return err
		}

		table := override
		if articleCache != nil {
			res := articleCache.Get(context.Background())
			if res.Unavailable() {
				if override == nil {
					return fmt.Errorf("data unavailable: %w", res.Err)
				}
			} else {
				table = res.Table
				if res.Stale {
					fmt.Printf("[warn] showing stale data: %v\n", res.Err)
				}
			}
			if len(table) == 0 && override != nil {
				table = override
			}
		}

		s := stats.Summarize(table)
		fmt.Printf("Articles: %d\n", s.Total)
		fmt.Printf("Sources:  %d\n", s.SourceCount)
		fmt.Printf("Topics:   %d\n", s.TopicCount)

		if s.Total == 0 {
			return nil
		}

		fmt.Println("\nSentiment:")
		for _, lc := range stats.SentimentCounts(table) {
			fmt.Printf("  %-12s %4d  (%s)\n", lc.Label, lc.Count, formatShare(stats.Share(table, lc.Label)))
		}

		fmt.Println("\nTop sources:")
		for _, lc := range stats.TopSources(table, 10) {
			fmt.Printf("  %-24s %4d\n", lc.Label, lc.Count)
		}

		fmt.Println("\nTop topics:")
		for _, lc := range stats.TopTopics(table, 10) {
			fmt.Printf("  %-24s %4d\n", lc.Label, lc.Count)
		}
		return nil
	},
}

func formatShare(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
