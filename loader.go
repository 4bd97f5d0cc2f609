package designgen

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	ignore "github.com/sabhiram/go-gitignore"
)

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads ./.gitignore once; a missing file means nothing is ignored
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipInput reports whether a matched input file is gitignored.
// Absolute paths are never checked against the project .gitignore.
func shouldSkipInput(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	gi := loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

// expandInputs expands glob patterns to node files. Each pattern's matches
// are sorted so emission order is stable across platforms.
func expandInputs(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Wrapf(err, "glob pattern %q", pattern)
		}
		sort.Strings(matches)

		for _, match := range matches {
			if seen[match] || shouldSkipInput(match) {
				continue
			}
			seen[match] = true
			files = append(files, match)
		}
	}

	return files, nil
}

// LoadNodes reads design nodes from the files matching patterns. A file
// holds either a single node object or an array of nodes.
func LoadNodes(patterns []string) ([]DesignNode, error) {
	files, err := expandInputs(patterns)
	if err != nil {
		return nil, err
	}
	return loadNodeFiles(files)
}

// loadNodeFiles decodes files in order; the first bad file aborts the load
func loadNodeFiles(files []string) ([]DesignNode, error) {
	var nodes []DesignNode
	for _, file := range files {
		fileNodes, err := loadNodeFile(file)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, fileNodes...)
	}
	return nodes, nil
}

func loadNodeFile(path string) ([]DesignNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return decodeNodes(data, path)
}

func decodeNodes(data []byte, source string) ([]DesignNode, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var nodes []DesignNode
		if err := json.Unmarshal(trimmed, &nodes); err != nil {
			return nil, errors.Wrapf(err, "decoding node array in %s", source)
		}
		return nodes, nil
	}

	var node DesignNode
	if err := json.Unmarshal(trimmed, &node); err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "decoding node in %s", source),
			"each input file must hold one node object or an array of nodes",
		)
	}
	return []DesignNode{node}, nil
}
