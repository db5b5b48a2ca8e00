package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/versegen/core"
	"github.com/katalvlaran/versegen/corpus"
	"github.com/katalvlaran/versegen/store"
)

var (
	buildCorpus string
	buildDict   string
	buildOut    string
	buildDB     string
	buildName   string
)

// buildCmd ingests a corpus directory into a graph and persists it.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a transition graph from a corpus directory",
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildCorpus, "corpus", "", "Corpus directory (default: corpus.dir)")
	buildCmd.Flags().StringVar(&buildDict, "dict", "", "Pronunciation dictionary (default: dictionary)")
	buildCmd.Flags().StringVar(&buildOut, "out", "", "Snapshot file to write (default: store.snapshot)")
	buildCmd.Flags().StringVar(&buildDB, "db", "", "Badger directory; stores the graph there instead of a file")
	buildCmd.Flags().StringVar(&buildName, "name", "", "Graph name inside --db (default: store.graph)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	if buildCorpus != "" {
		cfg.Corpus.Dir = buildCorpus
	}
	if buildOut != "" {
		cfg.Store.Snapshot = buildOut
	}
	if buildDB != "" {
		cfg.Store.DBPath = buildDB
	}
	if buildName != "" {
		cfg.Store.Graph = buildName
	}

	d, err := loadDictionary(buildDict)
	if err != nil {
		return err
	}

	g := core.NewGraph()
	ld, err := corpus.NewLoader(g, d, corpus.WithLogger(logger))
	if err != nil {
		return err
	}
	st, err := ld.LoadDir(cmd.Context(), cfg.Corpus.Dir)
	if err != nil {
		return err
	}
	if cfg.Corpus.MarkRhymes {
		if _, err = ld.MarkRhymePartners(); err != nil {
			return err
		}
	}

	dest := cfg.Store.Snapshot
	if cfg.Store.DBPath != "" {
		db, err := store.Open(store.Config{Path: cfg.Store.DBPath, SyncWrites: cfg.Store.SyncWrites, Logger: logger})
		if err != nil {
			return err
		}
		defer db.Close()
		if err = db.Put(cfg.Store.Graph, g); err != nil {
			return err
		}
		dest = cfg.Store.DBPath + "#" + cfg.Store.Graph
	} else if err = store.SaveFile(cfg.Store.Snapshot, g); err != nil {
		return err
	}

	gs := g.Stats()
	logger.Info("graph built", zap.String("dest", dest), zap.Int("files", st.Files))
	fmt.Fprintf(cmd.OutOrStdout(), "%d files, %d sentences, %d words (%d unknown), %d vertices, %d edges → %s\n",
		st.Files, st.Sentences, st.Tokens, st.Unknown, gs.VertexCount, gs.EdgeCount, dest)
	return nil
}
