package designgen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "export { default as Card } from './Card';",
			column:     21,
			want:       "                    ^",
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\timport x from 'y';",
			column:     5,
			want:       "\t\t  ^",
		},
		{
			name:       "start of line",
			sourceLine: "import React from 'react';",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, buildCaretIndicator(tt.sourceLine, tt.column))
		})
	}
}

func TestReporterPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf, printLines: true, printCheckName: true}

	r.PrintIssues([]Issue{
		{FromCheck: CheckManifest, Text: "second", Severity: SeverityError, Pos: IssuePos{Filename: "package.json"}},
		{
			FromCheck:  CheckImports,
			Text:       "first",
			Severity:   SeverityError,
			SourceLine: "import x from './x';",
			Pos:        IssuePos{Filename: "a.ts", Line: 1, Column: 15},
		},
	})

	want := "a.ts:1:15: first (imports)\n" +
		"\timport x from './x';\n" +
		"\t              ^\n" +
		"package.json:0:0: second (manifest)\n"
	assert.Equal(t, want, buf.String())
}

func TestReporterPrintSummary(t *testing.T) {
	tests := []struct {
		name   string
		issues []Issue
		want   string
	}{
		{
			name: "clean",
			want: "\n0 issues: project is coherent\n",
		},
		{
			name: "mixed severities",
			issues: []Issue{
				{FromCheck: CheckBarrel, Severity: SeverityWarning},
				{FromCheck: CheckManifest, Severity: SeverityError},
				{FromCheck: CheckManifest, Severity: SeverityError},
			},
			want: "\n3 issues (2 errors, 1 warning):\n* barrel: 1\n* manifest: 2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := &Reporter{w: &buf}
			r.PrintSummary(tt.issues)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestReporterPrintGeneration(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf}

	r.PrintGeneration(GenerationSummary{
		OutputDir:  "out",
		Components: []ComponentEntry{{Name: "Card"}},
		Written:    []string{"a", "b"},
		Skipped:    []string{"src/index.ts"},
		Warnings:   []string{"collision"},
	})

	assert.Equal(t,
		"warning: collision\nSkipped (ignored):\n  src/index.ts\nGenerated 1 component, 2 files to out\n",
		buf.String())
}
