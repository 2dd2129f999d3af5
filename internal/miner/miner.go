// Package miner orchestrates a full structure-mining run: read every corpus
// line through the date preprocessor into the structure tree, then refine
// the tree once. The run is strictly two-phase and batch.
package miner

import (
	"fmt"
	"io"

	"github.com/logsift/logsift/internal/progress"
	"github.com/logsift/logsift/internal/source"
	"github.com/logsift/logsift/internal/token"
	"github.com/logsift/logsift/internal/tree"
)

// Miner owns the tree for one run.
type Miner struct {
	tree     *tree.Tree
	progress *progress.Reporter
}

// Option configures a Miner.
type Option func(*Miner)

// WithProgress attaches a progress reporter.
func WithProgress(r *progress.Reporter) Option {
	return func(m *Miner) {
		m.progress = r
	}
}

// New creates a Miner with a fresh tree.
func New(opts ...Option) *Miner {
	m := &Miner{
		tree:     tree.New(),
		progress: progress.New(io.Discard, false),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Tree returns the miner's structure tree.
func (m *Miner) Tree() *tree.Tree { return m.tree }

// Build inserts every line of every named corpus into the tree. A fatal
// tokenizer condition aborts the whole run; there is no partial recovery.
func (m *Miner) Build(paths []string) error {
	for _, path := range paths {
		rc, err := source.Open(path)
		if err != nil {
			return err
		}
		err = source.EachLine(rc, func(line string) error {
			m.progress.Step("reading")
			return m.tree.Insert(token.Preprocess(line))
		})
		cerr := rc.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if cerr != nil {
			return fmt.Errorf("%s: %w", path, cerr)
		}
	}
	return nil
}

// Refine runs the one-shot refinement pass.
func (m *Miner) Refine() {
	m.progress.Step("refining")
	m.tree.Refine()
	m.progress.Done()
}

// Run is the whole pipeline: build from paths, then refine.
func (m *Miner) Run(paths []string) (*tree.Tree, error) {
	if err := m.Build(paths); err != nil {
		return nil, err
	}
	m.Refine()
	return m.tree, nil
}
