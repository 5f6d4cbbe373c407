package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sonikratika023-droid/livepulse-automated/internal/article"
	"github.com/sonikratika023-droid/livepulse-automated/internal/cache"
	"github.com/sonikratika023-droid/livepulse-automated/internal/config"
	"github.com/sonikratika023-droid/livepulse-automated/internal/store"
	"github.com/sonikratika023-droid/livepulse-automated/internal/tui"
	"github.com/sonikratika023-droid/livepulse-automated/internal/upload"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig  string
	flagCSV     string
	flagRefresh bool
)

var rootCmd = &cobra.Command{
	Use:   "livepulse",
	Short: "Terminal news intelligence dashboard",
	Long: `livepulse renders a pre-annotated news dataset (sentiment, topic,
source) from a Supabase table as a terminal dashboard: overview charts,
a filterable table, and expandable article cards.

Connection comes from SUPABASE_URL and SUPABASE_KEY (env or config
file). A CSV export can be supplied with --csv as a fallback for when
the remote table is empty or credentials are unavailable.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagCSV, "csv", "", "CSV file used when the remote table is empty")
	rootCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "invalidate the snapshot before the first render")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("livepulse %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, articleCache, override, err := buildDataSources()
	if err != nil {
		return err
	}

	if flagRefresh && articleCache != nil {
		articleCache.Invalidate()
	}

	return tui.Run(tui.RunOpts{
		Cache:    articleCache,
		Override: override,
		TTL:      cfg.TTL(),
		RowLimit: cfg.GetRowLimit(),
		Version:  version,
	})
}

// buildDataSources resolves config, the cache over the remote store, and
// the optional CSV override. Missing credentials are fatal up front —
// unless a CSV file makes a store-free session possible.
func buildDataSources() (*config.Config, *cache.Cache, article.Table, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	var override article.Table
	if flagCSV != "" {
		f, err := os.Open(flagCSV)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening csv: %w", err)
		}
		defer f.Close()
		override, err = upload.ReadCSV(f)
		if err != nil {
			// Malformed uploads are reported, never partially accepted.
			return nil, nil, nil, fmt.Errorf("parsing %s: %w", flagCSV, err)
		}
	}

	if err := cfg.ValidateCredentials(); err != nil {
		if override != nil {
			// CSV-only session; the store is never constructed.
			return cfg, nil, override, nil
		}
		return nil, nil, nil, fmt.Errorf("supabase configuration: %w (pass --csv to run from a file instead)", err)
	}

	client := store.New(cfg.SupabaseURL(), cfg.SupabaseKey(), cfg.Timeout())
	articleCache := cache.New(client, cfg.TableName(), cfg.TTL())
	return cfg, articleCache, override, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
