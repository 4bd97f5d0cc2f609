package designgen

import (
	"github.com/cockroachdb/errors"
	core "github.com/yacobolo/designgen/internal/designgen"
	"go.uber.org/zap"
)

// Generate is the main entry point: load nodes, emit the project, verify
// it and write it to config.OutputDir
func Generate(config Config) (*GenerateResult, error) {
	log := nopIfNil(config.Logger)
	result := &GenerateResult{}

	// 1. Find node files
	files, err := expandInputs(config.Inputs)
	if err != nil {
		return nil, errors.Wrap(err, "scan failed")
	}
	result.FilesScanned = len(files)
	if len(files) == 0 {
		return nil, errors.WithHint(
			errors.Newf("no design node files match %v", config.Inputs),
			"export nodes from the design tool as JSON or run `designgen pull`",
		)
	}
	log.Debug("found node files", zap.Int("count", len(files)))

	// 2. Decode nodes
	nodes, err := loadNodeFiles(files)
	if err != nil {
		return nil, errors.Wrap(err, "load failed")
	}
	result.NodesLoaded = len(nodes)
	log.Debug("loaded nodes", zap.Int("count", len(nodes)))

	// 3. Emit
	tree, err := Emit(nodes, config)
	if err != nil {
		return nil, err
	}
	result.Components = tree.Components
	result.Warnings = tree.Warnings
	for _, w := range tree.Warnings {
		log.Warn(w)
	}

	// 4. Verify cross-file references before anything touches disk
	result.Issues = core.VerifyTree(tree)
	for _, issue := range result.Issues {
		if issue.Severity == core.SeverityError {
			return result, errors.Newf("emitted project is incoherent: %s: %s", issue.Pos.Filename, issue.Text)
		}
	}

	if config.DryRun {
		result.Written = append(result.Written, tree.Paths...)
		return result, nil
	}

	// 5. Write
	result.Written, result.Skipped, err = WriteTree(config.OutputDir, tree, config.IgnoreFile)
	if err != nil {
		return result, errors.Wrap(err, "write failed")
	}
	log.Info("generated project",
		zap.String("dir", config.OutputDir),
		zap.Int("components", len(result.Components)),
		zap.Int("files", len(result.Written)),
		zap.Int("skipped", len(result.Skipped)),
	)

	return result, nil
}

// Emit generates the project tree for nodes without touching disk
func Emit(nodes []DesignNode, config Config) (ProjectTree, error) {
	idiom, ok := core.ParseIdiom(config.Idiom)
	if !ok {
		return ProjectTree{}, errors.WithHintf(
			errors.Newf("unknown style idiom %q", config.Idiom),
			"use one of %v", core.Idioms,
		)
	}

	return core.EmitProject(nodes, core.ProjectOptions{
		Options: core.Options{
			Idiom:           idiom,
			IncludeTypes:    config.Types,
			IncludeChildren: config.Children,
			IncludeTests:    config.Tests,
			IncludeStories:  config.Stories,
		},
		PackageName:    config.PackageName,
		PackageVersion: config.PackageVersion,
	}), nil
}
