package rdf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"
)

// DefaultPatterns are the glob patterns LoadDir uses when none are given.
var DefaultPatterns = []string{"**/*.nt", "**/*.nq"}

// Read decodes N-Triples or N-Quads from r into g and returns the number
// of new triples.
func (g *Graph) Read(r io.Reader) (int, error) {
	dec := nquads.NewReader(r, false)
	added := 0
	for {
		q, err := dec.ReadQuad()
		if errors.Is(err, io.EOF) {
			return added, nil
		}
		if err != nil {
			return added, fmt.Errorf("decode n-quads: %w", err)
		}
		if g.AddQuad(q) {
			added++
		}
	}
}

// LoadFile reads one N-Triples or N-Quads file into g.
func (g *Graph) LoadFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	n, err := g.Read(f)
	if err != nil {
		return n, fmt.Errorf("load %s: %w", path, err)
	}
	return n, nil
}

// LoadDir reads every file under dir matching patterns (DefaultPatterns
// when empty). Files are loaded in lexical path order. It returns the files
// it loaded.
func (g *Graph) LoadDir(dir string, patterns ...string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)

	for _, f := range files {
		if _, err := g.LoadFile(f); err != nil {
			return nil, err
		}
	}
	return files, nil
}

// Load reads the given files and directories into a new graph.
func Load(paths ...string) (*Graph, error) {
	g := NewGraph()
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if info.IsDir() {
			if _, err := g.LoadDir(p); err != nil {
				return nil, err
			}
			continue
		}
		if _, err := g.LoadFile(p); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Quads returns the graph contents as quads with no label.
func (g *Graph) Quads() []quad.Quad {
	triples := g.Triples(nil, nil, nil)
	out := make([]quad.Quad, 0, len(triples))
	for _, t := range triples {
		out = append(out, quad.Quad{Subject: t.Subject, Predicate: t.Predicate, Object: t.Object})
	}
	return out
}
