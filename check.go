package designgen

import (
	"io/fs"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	core "github.com/yacobolo/designgen/internal/designgen"
	"go.uber.org/zap"
)

// defaultCheckIncludes selects the files an emitted project consists of
var defaultCheckIncludes = []string{
	core.ManifestPath,
	core.CompilerConfPath,
	"src/**/*.{ts,tsx,css}",
}

// Check reads an emitted project from disk and verifies its cross-file
// references: barrel exports, manifest dependencies and relative imports
func Check(config CheckConfig) (*CheckResult, error) {
	log := nopIfNil(config.Logger)

	info, err := os.Stat(config.Dir)
	if err != nil {
		return nil, errors.Wrapf(err, "project directory %s", config.Dir)
	}
	if !info.IsDir() {
		return nil, errors.Newf("%s is not a directory", config.Dir)
	}

	includes := config.Includes
	if len(includes) == 0 {
		includes = defaultCheckIncludes
	}

	files, err := readProjectFiles(os.DirFS(config.Dir), includes)
	if err != nil {
		return nil, err
	}
	log.Debug("read project files", zap.String("dir", config.Dir), zap.Int("count", len(files)))

	result := &CheckResult{
		FilesScanned: len(files),
		Issues:       core.VerifyFiles(files),
	}
	for _, issue := range result.Issues {
		switch issue.Severity {
		case core.SeverityError:
			result.ErrorCount++
		case core.SeverityWarning:
			result.WarningCount++
		}
	}
	return result, nil
}

// readProjectFiles loads every file matching includes into a slash-path map
func readProjectFiles(fsys fs.FS, includes []string) (map[string]string, error) {
	files := make(map[string]string)

	for _, pattern := range includes {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Wrapf(err, "glob pattern %q", pattern)
		}
		sort.Strings(matches)

		for _, match := range matches {
			if _, ok := files[match]; ok {
				continue
			}
			data, err := fs.ReadFile(fsys, match)
			if err != nil {
				return nil, errors.Wrapf(err, "reading %s", match)
			}
			files[match] = string(data)
		}
	}

	return files, nil
}
