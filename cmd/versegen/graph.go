package main

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/versegen/core"
	"github.com/katalvlaran/versegen/line"
	"github.com/katalvlaran/versegen/phonology"
	"github.com/katalvlaran/versegen/store"
)

var errNoGraph = errors.New("versegen: no graph configured; run build first or set store.snapshot / store.db_path")

// loadDictionary reads the configured pronunciation dictionary.
func loadDictionary(path string) (*phonology.Dictionary, error) {
	if path == "" {
		path = cfg.Dictionary
	}
	d, err := phonology.LoadDictionaryFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("dictionary loaded", zap.String("path", path), zap.Int("entries", d.Len()))
	return d, nil
}

// loadGraph opens the configured graph: the badger store when db_path is
// set, the snapshot file otherwise.
func loadGraph() (*core.Graph, error) {
	var (
		g   *core.Graph
		err error
	)
	switch {
	case cfg.Store.DBPath != "":
		var db *store.Badger
		db, err = store.Open(store.Config{Path: cfg.Store.DBPath, SyncWrites: cfg.Store.SyncWrites, Logger: logger})
		if err != nil {
			return nil, err
		}
		defer db.Close()
		g, err = db.Get(cfg.Store.Graph)
	case cfg.Store.Snapshot != "":
		g, err = store.LoadFile(cfg.Store.Snapshot)
	default:
		return nil, errNoGraph
	}
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}

	st := g.Stats()
	logger.Debug("graph loaded",
		zap.Int("vertices", st.VertexCount),
		zap.Int("edges", st.EdgeCount),
		zap.Int("rhyme_partners", st.RhymePartnerCount))
	return g, nil
}

// newBuilder wires the generation settings into a line.Builder.
func newBuilder(g *core.Graph) (*line.Builder, error) {
	gen := cfg.Generation
	return line.NewBuilder(g,
		line.WithSeed(effectiveSeed()),
		line.WithPolicy(policy()),
		line.WithMaxAttempts(gen.MaxAttempts),
		line.WithMaxIterations(gen.MaxIterations),
		line.WithLogger(logger),
	)
}
