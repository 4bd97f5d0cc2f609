package designgen

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	ignore "github.com/sabhiram/go-gitignore"
)

// WriteTree writes every file of tree below dir in emission order. Paths
// matched by ignoreFile (gitignore syntax, relative to dir) are left
// untouched so hand-edited files survive regeneration. An empty or missing
// ignoreFile ignores nothing.
func WriteTree(dir string, tree ProjectTree, ignoreFile string) (written, skipped []string, err error) {
	var gi *ignore.GitIgnore
	if ignoreFile != "" {
		if _, statErr := os.Stat(ignoreFile); statErr == nil {
			gi, err = ignore.CompileIgnoreFile(ignoreFile)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "compiling ignore file %s", ignoreFile)
			}
		}
	}

	for _, rel := range tree.Paths {
		if gi != nil && gi.MatchesPath(rel) {
			skipped = append(skipped, rel)
			continue
		}

		target := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return written, skipped, errors.Wrapf(err, "creating directory for %s", rel)
		}
		if err := os.WriteFile(target, []byte(tree.Files[rel]), 0o644); err != nil {
			return written, skipped, errors.Wrapf(err, "writing %s", rel)
		}
		written = append(written, rel)
	}

	return written, skipped, nil
}
