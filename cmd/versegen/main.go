// Command versegen builds word-transition graphs from text and generates
// constrained verse from them.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/versegen/config"
	"github.com/katalvlaran/versegen/logging"
	"github.com/katalvlaran/versegen/sampler"
)

var (
	// Global flags
	cfgFile    string
	verbose    bool
	seedFlag   int64
	policyFlag string

	// Resolved per invocation
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "versegen",
	Short: "Constrained verse generation from word-transition graphs",
	Long: `versegen learns which words follow which from a text corpus and walks
that graph to produce lines of verse that satisfy rhyme, alliteration,
assonance and stress constraints.

Typical flow:
  versegen build --corpus ./poems --dict cmudict.syl --out poems.graph
  versegen generate --scheme ABAB --nwords 6`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			cfg.Generation.Seed = seedFlag
		}
		if cmd.Flags().Changed("policy") {
			cfg.Generation.Policy = policyFlag
		}
		if err = cfg.Validate(); err != nil {
			return err
		}

		logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format, verbose)
		if err != nil {
			return err
		}
		logger = logger.With(zap.String("run_id", uuid.NewString()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "versegen.yaml", "Config file (YAML); missing file means defaults")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "Random seed (0: time based)")
	rootCmd.PersistentFlags().StringVar(&policyFlag, "policy", "roulette", "Successor ordering: roulette or uniform")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(skeletonCmd)
	rootCmd.AddCommand(rhymesCmd)
	rootCmd.AddCommand(meterCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// effectiveSeed returns the configured seed, or a time-based one for 0.
// The chosen seed is logged so a run can be reproduced.
func effectiveSeed() int64 {
	seed := cfg.Generation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("seed", zap.Int64("seed", seed))
	return seed
}

// policy parses the configured ordering policy; Validate has already checked it.
func policy() sampler.Policy {
	p, _ := sampler.ParsePolicy(cfg.Generation.Policy)
	return p
}
