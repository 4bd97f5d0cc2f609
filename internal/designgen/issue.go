package designgen

// Issue is a single coherence violation in an emitted project, reported in
// golangci-lint style (file:line:col: message (check))
type Issue struct {
	FromCheck  string   `json:"FromCheck"`  // "barrel", "manifest", "imports"
	Text       string   `json:"Text"`       // "dependency \"jsdom\" is not imported by any emitted file"
	Severity   string   `json:"Severity"`   // "error" or "warning"
	SourceLine string   `json:"SourceLine"` // Offending line, empty for file-level issues
	Pos        IssuePos `json:"Pos"`
}

// IssuePos specifies the location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "src/components/index.ts"
	Line     int    `json:"Line"`     // 1-based, 0 for file-level issues
	Column   int    `json:"Column"`
}

// Issue severities
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Check names
const (
	CheckBarrel   = "barrel"
	CheckManifest = "manifest"
	CheckImports  = "imports"
)

// Issue message formats
const (
	IssueMissingComponent   = "barrel exports %s but %s does not exist"
	IssueDuplicateExport    = "barrel exports %s more than once"
	IssueUnreachable        = "component folder %s is not exported by the barrel"
	IssueUnjustifiedDep     = "dependency %q is not imported by any emitted file"
	IssueUndeclaredImport   = "package %q is imported but not declared in package.json"
	IssueUnresolvedImport   = "relative import %q does not resolve to an emitted file"
	IssueInvalidManifest    = "package.json is not valid JSON: %v"
	IssueMissingProjectFile = "required project file is missing"
)
