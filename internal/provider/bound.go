package provider

// defaultDiffLimit applies when the backend has no registered limit.
const defaultDiffLimit = 8000

// BoundResult describes the outcome of bounding a diff.
type BoundResult struct {
	Text        string
	Truncated   bool
	OriginalLen int
	BoundedLen  int
}

// DiffLimit returns the safe diff character limit for b. Limits sit well
// below each service's context window to leave room for the instruction
// template and the reply.
func DiffLimit(b Backend) int {
	if spec, ok := backends[b]; ok {
		return spec.diffLimit
	}
	return defaultDiffLimit
}

// BoundDiff truncates diff to b's limit. Pure: no side effects, no error
// path. Surfacing a truncation advisory is the caller's job.
func BoundDiff(diff string, b Backend) BoundResult {
	limit := DiffLimit(b)
	if len(diff) <= limit {
		return BoundResult{Text: diff, OriginalLen: len(diff), BoundedLen: len(diff)}
	}
	return BoundResult{
		Text:        diff[:limit],
		Truncated:   true,
		OriginalLen: len(diff),
		BoundedLen:  limit,
	}
}
