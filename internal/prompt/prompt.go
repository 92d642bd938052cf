package prompt

import (
	"regexp"
	"strings"
)

// Style selects how verbose the instruction document asks the model to be.
type Style string

const (
	StyleConcise  Style = "concise"
	StyleThorough Style = "thorough"
)

// Known reports whether s is a supported style name.
func Known(s Style) bool {
	return s == StyleConcise || s == StyleThorough
}

const roleFraming = "You are an expert software engineer and git commit message writer.\n" +
	"You read a unified diff and produce the single best commit message for it.\n"

const formatSpec = `# OUTPUT FORMAT
type(scope): summary

Optional body paragraph explaining what changed and why.

Optional bulleted key changes:
- change one
- change two

Optional trailing sections when they apply:
Testing: how the change was verified
Fixes: issue reference
BREAKING CHANGE: description of the break
`

const allowedTypes = "# ALLOWED TYPES\nfeat, fix, refactor, docs, style, test, chore, perf\n"

const rulesBlock = `# RULES
- The summary line MUST be 72 characters or fewer.
- Use the imperative mood ("add", not "added" or "adds").
- Never use generic placeholders like "update code" or "various fixes".
- Plain text only: no markdown, no code fences, no backticks.
- Match the verbosity to the diff: a small diff gets a one-line message.
`

const conciseExample = `# EXAMPLE
fix(parser): handle empty input without panicking
`

const thoroughExamples = `# EXAMPLES

Small change:
fix(parser): handle empty input without panicking

Larger change:
feat(auth): add token refresh to the session middleware

Sessions now refresh their access token when it is within five
minutes of expiry instead of failing the request.

- add refresh path to the middleware chain
- persist rotated refresh tokens

Testing: covered by middleware integration tests
`

// Build renders the complete instruction document for the given diff.
// It is a pure function: identical inputs always produce identical output,
// and the diff is embedded verbatim. An empty diff still renders.
func Build(diff string, style Style) string {
	var b strings.Builder

	b.WriteString(roleFraming)
	b.WriteString("\n")
	b.WriteString(formatSpec)
	b.WriteString("\n")
	b.WriteString(allowedTypes)
	b.WriteString("\n")
	b.WriteString(rulesBlock)
	b.WriteString("\n")
	if style == StyleThorough {
		b.WriteString(thoroughExamples)
	} else {
		b.WriteString(conciseExample)
	}
	b.WriteString("\n# DIFF\n")
	b.WriteString(diff)
	b.WriteString("\n\nRemember: keep the message proportional to the size of the diff above.\n")

	return b.String()
}

var reCodeFence = regexp.MustCompile("(?ms)^```(?:\\w+)?\\s*([\\s\\S]+?)\\s*```$")

// Sanitize strips a wrapping markdown code fence from a model reply.
// The rules forbid fences, but models occasionally add one anyway.
func Sanitize(reply string) string {
	reply = strings.TrimSpace(reply)
	if m := reCodeFence.FindStringSubmatch(reply); len(m) == 2 {
		return strings.TrimSpace(m[1])
	}
	return reply
}
