package line

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/versegen/constraint"
	"github.com/katalvlaran/versegen/phonology"
	"github.com/katalvlaran/versegen/skeleton"
)

// Scheme generates one line of nwords words per letter of scheme (e.g.
// "AABB", "ABAB"). Lines sharing a letter end on rhyming words.
//
// The first line of each letter is the anchor: its last word must have a
// rhyme partner in the graph. Anchor lines are built concurrently, then every
// other line is built concurrently with its last word bound to rhyme with the
// anchor's last word. Each call draws a base seed from the Builder's stream
// and line i draws from a stream derived from (base, i), so a fixed seed
// reproduces the sequence of stanzas regardless of scheduling.
func (b *Builder) Scheme(ctx context.Context, scheme string, nwords int) ([][]phonology.Word, error) {
	letters, err := parseScheme(scheme)
	if err != nil {
		return nil, err
	}
	if nwords < 1 {
		return nil, fmt.Errorf("%w: %d words per line", ErrInvalidLength, nwords)
	}

	base := b.callSeed()
	last := nwords - 1
	anchorOf := make(map[rune]int, len(letters))
	for i, l := range letters {
		if _, ok := anchorOf[l]; !ok {
			anchorOf[l] = i
		}
	}
	lines := make([][]phonology.Word, len(letters))
	partner := constraint.Match(last, "rhyme-partner", b.partnerTest())

	// 1. Anchor lines.
	g, gctx := errgroup.WithContext(ctx)
	for i, l := range letters {
		if anchorOf[l] != i {
			continue
		}
		g.Go(func() error {
			return b.schemeLine(gctx, lines, base, i, l, nwords, []constraint.Predicate{partner})
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	// 2. Dependent lines.
	g, gctx = errgroup.WithContext(ctx)
	for i, l := range letters {
		if anchorOf[l] == i {
			continue
		}
		anchor := lines[anchorOf[l]][last]
		g.Go(func() error {
			return b.schemeLine(gctx, lines, base, i, l, nwords, []constraint.Predicate{constraint.Bind(last, constraint.Rhyme, anchor)})
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	linesTotal.WithLabelValues("scheme").Add(float64(len(lines)))
	b.opts.Logger.Debug("line: scheme built", zap.String("scheme", string(letters)), zap.Int("nwords", nwords))

	return lines, nil
}

// schemeLine builds line i into lines[i]. Each goroutine writes its own slot.
func (b *Builder) schemeLine(ctx context.Context, lines [][]phonology.Word, base int64, i int, letter rune, nwords int, preds []constraint.Predicate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ws, err := b.build(lineRand(base, i), nwords, preds, nil)
	if err != nil {
		return fmt.Errorf("line %d (%c): %w", i+1, letter, err)
	}
	lines[i] = ws
	return nil
}

// parseScheme upper-cases scheme and checks that it holds letters only.
// Spaces are ignored, so "AB AB" equals "ABAB".
func parseScheme(scheme string) ([]rune, error) {
	var out []rune
	for _, r := range strings.ToUpper(scheme) {
		switch {
		case unicode.IsSpace(r):
			continue
		case unicode.IsLetter(r):
			out = append(out, r)
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidScheme, scheme)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidScheme)
	}
	return out, nil
}

// partnerTest reports which words can end an anchor line. Graphs loaded
// through the corpus package carry a per-vertex flag computed from rhymes
// reachable in the graph; otherwise any other word in the graph with the
// same rhyme key counts.
func (b *Builder) partnerTest() func(phonology.Word) bool {
	if b.graph.Stats().RhymePartnerCount > 0 {
		return b.graph.HasRhymePartner
	}

	classes := make(map[string]map[string]struct{})
	for _, w := range b.graph.Nodes() {
		k := phonology.RhymeKey(w)
		if k == "" {
			continue
		}
		if classes[k] == nil {
			classes[k] = make(map[string]struct{})
		}
		classes[k][w.Text] = struct{}{}
	}

	return func(w phonology.Word) bool {
		for text := range classes[phonology.RhymeKey(w)] {
			if text != w.Text {
				return true
			}
		}
		return false
	}
}

// Block generates nlines unconstrained lines of nwords words concurrently.
func (b *Builder) Block(ctx context.Context, nlines, nwords int) ([][]phonology.Word, error) {
	if nlines < 1 || nwords < 1 {
		return nil, fmt.Errorf("%w: %d lines of %d words", ErrInvalidLength, nlines, nwords)
	}
	base := b.callSeed()
	lines := make([][]phonology.Word, nlines)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < nlines; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ws, err := b.build(lineRand(base, i), nwords, nil, nil)
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			lines[i] = ws
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	linesTotal.WithLabelValues("block").Add(float64(nlines))

	return lines, nil
}

// Skeleton builds one sequence covering the whole poem, so constraints may
// span lines, and cuts it into the poem's lines.
func (b *Builder) Skeleton(poem *skeleton.Poem) ([][]phonology.Word, error) {
	if poem == nil || poem.Length == 0 {
		return [][]phonology.Word{}, nil
	}
	ws, err := b.Build(poem.Length, nil, poem.Constraints)
	if err != nil {
		return skeleton.Split(poem, ws), err
	}
	linesTotal.WithLabelValues("skeleton").Add(float64(len(poem.LineLengths)))

	return skeleton.Split(poem, ws), nil
}
