// Command cubecount is a demo driver for the cubezdd aggregation
// engine: it reads a JSON list of weighted path
// observations, folds them into one ZDD-number, and answers count
// queries for a set of paths given on the command line.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cubezdd/cubezdd"
)

// observation is one element of the input JSON array: a signed weight against a
// path through the label hierarchy, e.g. {"weight": 1, "path": ["a", "b"]}.
type observation struct {
	Weight int64    `json:"weight"`
	Path   []string `json:"path"`
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var observationsPath string
	var queries []string
	var logLevel string
	var opCacheSize int

	root := &cobra.Command{
		Use:   "cubecount",
		Short: "Fold weighted path observations into a ZDD and answer count queries",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
			}
			logger = logger.Level(level)

			obs, err := loadObservations(observationsPath)
			if err != nil {
				return fmt.Errorf("loading observations: %w", err)
			}

			store := cubezdd.NewStore(
				cubezdd.WithLogger(logger),
				cubezdd.WithOpCacheSize(opCacheSize),
				cubezdd.WithGrowthLogInterval(10000),
			)
			compiler := cubezdd.NewCompiler(store)

			weighted := make([]cubezdd.WeightedExpr, 0, len(obs))
			for _, o := range obs {
				weighted = append(weighted, cubezdd.WeightedExpr{
					Weight: o.Weight,
					Tree:   cubezdd.PathOf(o.Path...),
				})
			}
			acc := cubezdd.SumSubtrees(store, compiler, weighted)

			logger.Info().
				Int("observations", len(obs)).
				Int("nodes", store.Size()).
				Msg("accumulated observations")

			for _, q := range queries {
				labels := splitPath(q)
				query := cubezdd.PathOf(labels...)
				n, err := cubezdd.Count(store, compiler, acc, query)
				if err != nil {
					return fmt.Errorf("counting %q: %w", q, err)
				}
				fmt.Printf("%s\t%d\n", q, n)
			}

			store.LogMetrics()
			return nil
		},
	}

	root.Flags().StringVarP(&observationsPath, "observations", "o", "", "path to a JSON file of weighted path observations (required)")
	root.Flags().StringArrayVarP(&queries, "query", "q", nil, "slash-separated path to count, repeatable")
	root.Flags().StringVar(&logLevel, "log-level", "info", "zerolog level: debug, info, warn, error")
	root.Flags().IntVar(&opCacheSize, "op-cache-size", 0, "bound each set-operation memo cache to this many entries (0 = unbounded)")
	_ = root.MarkFlagRequired("observations")

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("cubecount failed")
		os.Exit(1)
	}
}

func loadObservations(path string) ([]observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var obs []observation
	if err := json.NewDecoder(f).Decode(&obs); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return obs, nil
}

// splitPath turns a slash-separated query like "a/b/c" into its labels.
func splitPath(q string) []string {
	parts := strings.Split(q, "/")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			labels = append(labels, p)
		}
	}
	return labels
}
