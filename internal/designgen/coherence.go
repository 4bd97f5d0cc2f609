package designgen

import (
	"encoding/json"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"
)

var (
	barrelExportPattern = regexp.MustCompile(`^export \{ default as ([A-Za-z0-9_$]+) \} from '\./([^']+)';`)
	importPattern       = regexp.MustCompile(`^\s*(?:import\s+'([^']+)'|(?:import|export)\b[^'"]*\bfrom\s+'([^']+)')`)
	envPragmaPattern    = regexp.MustCompile(`@vitest-environment\s+([A-Za-z0-9@/._-]+)`)
)

// requiredFiles must exist in every emitted project
var requiredFiles = []string{ManifestPath, CompilerConfPath, BarrelPath, SharedTypesPath, UtilsPath}

// importRef is one import specifier found in a file
type importRef struct {
	spec string
	file string
	line int
	col  int
	text string
}

// VerifyTree checks the cross-file invariants of an emitted project
func VerifyTree(tree ProjectTree) []Issue {
	return VerifyFiles(tree.Files)
}

// VerifyFiles checks cross-file invariants on a path -> content map:
// barrel exports match component folders, manifest dependencies match
// imports, and relative imports resolve to files in the map
func VerifyFiles(files map[string]string) []Issue {
	var issues []Issue

	for _, p := range requiredFiles {
		if _, ok := files[p]; !ok {
			issues = append(issues, Issue{
				FromCheck: CheckManifest,
				Text:      IssueMissingProjectFile,
				Severity:  SeverityError,
				Pos:       IssuePos{Filename: p},
			})
		}
	}

	issues = append(issues, verifyBarrel(files)...)

	refs := collectImports(files)
	issues = append(issues, verifyRelativeImports(files, refs)...)
	issues = append(issues, verifyManifest(files, refs)...)

	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		return issues[i].Pos.Line < issues[j].Pos.Line
	})
	return issues
}

func verifyBarrel(files map[string]string) []Issue {
	content, ok := files[BarrelPath]
	if !ok {
		return nil
	}

	var issues []Issue
	exported := make(map[string]bool)

	for i, line := range splitLines(content) {
		m := barrelExportPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name, folder := m[1], m[2]
		pos := IssuePos{Filename: BarrelPath, Line: i + 1, Column: strings.Index(line, name) + 1}

		if exported[name] {
			issues = append(issues, Issue{
				FromCheck:  CheckBarrel,
				Text:       fmt.Sprintf(IssueDuplicateExport, name),
				Severity:   SeverityError,
				SourceLine: line,
				Pos:        pos,
			})
			continue
		}
		exported[folder] = true
		exported[name] = true

		componentFile := path.Join(ComponentsDir, folder, folder+".tsx")
		if _, ok := files[componentFile]; !ok {
			issues = append(issues, Issue{
				FromCheck:  CheckBarrel,
				Text:       fmt.Sprintf(IssueMissingComponent, name, componentFile),
				Severity:   SeverityError,
				SourceLine: line,
				Pos:        pos,
			})
		}
	}

	for p := range files {
		rel, ok := strings.CutPrefix(p, ComponentsDir+"/")
		if !ok {
			continue
		}
		folder, file, ok := strings.Cut(rel, "/")
		if !ok || file != folder+".tsx" || exported[folder] {
			continue
		}
		issues = append(issues, Issue{
			FromCheck: CheckBarrel,
			Text:      fmt.Sprintf(IssueUnreachable, path.Join(ComponentsDir, folder)),
			Severity:  SeverityWarning,
			Pos:       IssuePos{Filename: p},
		})
	}

	return issues
}

// collectImports finds import specifiers and test-environment pragmas
func collectImports(files map[string]string) []importRef {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var refs []importRef
	for _, p := range paths {
		if !isScriptFile(p) {
			continue
		}
		for i, line := range splitLines(files[p]) {
			if m := importPattern.FindStringSubmatchIndex(line); m != nil {
				start, end := m[2], m[3]
				if start < 0 {
					start, end = m[4], m[5]
				}
				refs = append(refs, importRef{
					spec: line[start:end],
					file: p,
					line: i + 1,
					col:  start + 1,
					text: line,
				})
			}
			if m := envPragmaPattern.FindStringSubmatchIndex(line); m != nil {
				refs = append(refs, importRef{
					spec: line[m[2]:m[3]],
					file: p,
					line: i + 1,
					col:  m[2] + 1,
					text: line,
				})
			}
		}
	}
	return refs
}

func isScriptFile(p string) bool {
	return strings.HasSuffix(p, ".ts") || strings.HasSuffix(p, ".tsx")
}

func isRelative(spec string) bool {
	return strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../")
}

// packageName reduces an import specifier to its package: "@scope/pkg/x" -> "@scope/pkg"
func packageName(spec string) string {
	parts := strings.Split(spec, "/")
	if strings.HasPrefix(spec, "@") && len(parts) >= 2 {
		return parts[0] + "/" + parts[1]
	}
	return parts[0]
}

func verifyRelativeImports(files map[string]string, refs []importRef) []Issue {
	var issues []Issue
	for _, ref := range refs {
		if !isRelative(ref.spec) {
			continue
		}
		target := path.Join(path.Dir(ref.file), ref.spec)
		if resolves(files, target) {
			continue
		}
		issues = append(issues, Issue{
			FromCheck:  CheckImports,
			Text:       fmt.Sprintf(IssueUnresolvedImport, ref.spec),
			Severity:   SeverityError,
			SourceLine: ref.text,
			Pos:        IssuePos{Filename: ref.file, Line: ref.line, Column: ref.col},
		})
	}
	return issues
}

func resolves(files map[string]string, target string) bool {
	candidates := []string{
		target,
		target + ".ts",
		target + ".tsx",
		target + ".d.ts",
		target + "/index.ts",
		target + "/index.tsx",
	}
	for _, c := range candidates {
		if _, ok := files[c]; ok {
			return true
		}
	}
	return false
}

func verifyManifest(files map[string]string, refs []importRef) []Issue {
	content, ok := files[ManifestPath]
	if !ok {
		return nil
	}

	var manifest Manifest
	if err := json.Unmarshal([]byte(content), &manifest); err != nil {
		return []Issue{{
			FromCheck: CheckManifest,
			Text:      fmt.Sprintf(IssueInvalidManifest, err),
			Severity:  SeverityError,
			Pos:       IssuePos{Filename: ManifestPath},
		}}
	}

	imported := make(map[string]bool)
	for _, ref := range refs {
		if !isRelative(ref.spec) {
			imported[packageName(ref.spec)] = true
		}
	}

	declared := make(map[string]bool)
	var deps []string
	for _, set := range []map[string]string{manifest.Dependencies, manifest.DevDependencies} {
		for dep := range set {
			if !declared[dep] {
				deps = append(deps, dep)
			}
			declared[dep] = true
		}
	}
	for dep := range manifest.PeerDependencies {
		declared[dep] = true
	}
	sort.Strings(deps)

	var issues []Issue
	for _, dep := range deps {
		if justified(dep, imported, files) {
			continue
		}
		issues = append(issues, Issue{
			FromCheck: CheckManifest,
			Text:      fmt.Sprintf(IssueUnjustifiedDep, dep),
			Severity:  SeverityError,
			Pos:       IssuePos{Filename: ManifestPath},
		})
	}

	reported := make(map[string]bool)
	for _, ref := range refs {
		if isRelative(ref.spec) {
			continue
		}
		pkg := packageName(ref.spec)
		if declared[pkg] || reported[pkg] {
			continue
		}
		reported[pkg] = true
		issues = append(issues, Issue{
			FromCheck:  CheckManifest,
			Text:       fmt.Sprintf(IssueUndeclaredImport, pkg),
			Severity:   SeverityError,
			SourceLine: ref.text,
			Pos:        IssuePos{Filename: ref.file, Line: ref.line, Column: ref.col},
		})
	}

	return issues
}

// justified reports whether a dependency is used directly or implied by
// another import: the DOM renderer by the view library, type packages by
// their runtime package and the compiler by the compiler config
func justified(dep string, imported map[string]bool, files map[string]string) bool {
	if imported[dep] {
		return true
	}
	switch {
	case dep == "react-dom":
		return imported["react"]
	case dep == "typescript":
		_, ok := files[CompilerConfPath]
		return ok
	case strings.HasPrefix(dep, "@types/"):
		return justified(strings.TrimPrefix(dep, "@types/"), imported, files)
	}
	return false
}
