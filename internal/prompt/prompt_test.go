package prompt

import (
	"strings"
	"testing"
)

func TestBuildEmbedsDiffVerbatim(t *testing.T) {
	diff := "diff --git a/x.go b/x.go\n-old := 1\n+new := 2\n# not a header\n"

	for _, style := range []Style{StyleConcise, StyleThorough} {
		doc := Build(diff, style)
		if !strings.Contains(doc, diff) {
			t.Errorf("%s: diff not embedded verbatim", style)
		}
	}
}

func TestBuildFixedSections(t *testing.T) {
	doc := Build("+change\n", StyleConcise)

	for _, want := range []string{
		"expert software engineer and git commit message writer",
		"# OUTPUT FORMAT",
		"type(scope): summary",
		"feat, fix, refactor, docs, style, test, chore, perf",
		"72 characters or fewer",
		"imperative mood",
		"# EXAMPLE",
		"# DIFF",
		"proportional to the size of the diff",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing section text %q", want)
		}
	}
}

func TestBuildStyleVariants(t *testing.T) {
	concise := Build("+x\n", StyleConcise)
	thorough := Build("+x\n", StyleThorough)

	if concise == thorough {
		t.Fatal("styles produced identical documents")
	}
	if !strings.Contains(thorough, "# EXAMPLES") {
		t.Error("thorough variant missing tiered examples")
	}
	if strings.Contains(concise, "Larger change:") {
		t.Error("concise variant carries the thorough example tier")
	}
}

func TestBuildDeterministic(t *testing.T) {
	diff := "+a\n-b\n"
	if Build(diff, StyleThorough) != Build(diff, StyleThorough) {
		t.Error("repeated builds diverged")
	}
}

func TestBuildEmptyDiffStillRenders(t *testing.T) {
	doc := Build("", StyleConcise)
	if !strings.Contains(doc, "# DIFF") {
		t.Error("empty diff dropped the diff section")
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain message",
			input: "feat: add thing\n",
			want:  "feat: add thing",
		},
		{
			name:  "text fence",
			input: "```text\nfeat: add thing\n```",
			want:  "feat: add thing",
		},
		{
			name:  "bare fence",
			input: "```\nfeat: add thing\n```",
			want:  "feat: add thing",
		},
		{
			name:  "surrounding whitespace",
			input: "  ```\nfeat: add thing\n```  ",
			want:  "feat: add thing",
		},
		{
			name:  "multiline body",
			input: "```\nfeat: add thing\n\nBody line.\n```",
			want:  "feat: add thing\n\nBody line.",
		},
		{
			name:  "prose before fence",
			input: "Here it is:\n```\nfeat: x\n```",
			want:  "feat: x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize() = %q, want %q", got, tt.want)
			}
		})
	}
}
