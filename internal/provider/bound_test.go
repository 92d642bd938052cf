package provider

import (
	"strings"
	"testing"
)

func TestBoundDiffShortInputUnchanged(t *testing.T) {
	diff := "diff --git a/main.go b/main.go\n+hello\n"

	for _, b := range Names() {
		res := BoundDiff(diff, b)
		if res.Truncated {
			t.Errorf("%s: short diff reported as truncated", b)
		}
		if res.Text != diff {
			t.Errorf("%s: short diff was modified", b)
		}
		if res.OriginalLen != len(diff) || res.BoundedLen != len(diff) {
			t.Errorf("%s: lengths = (%d, %d), want (%d, %d)", b, res.OriginalLen, res.BoundedLen, len(diff), len(diff))
		}
	}
}

func TestBoundDiffTruncatesToExactLimit(t *testing.T) {
	limit := DiffLimit(BackendGemini)
	diff := strings.Repeat("x", limit+500)

	res := BoundDiff(diff, BackendGemini)
	if !res.Truncated {
		t.Fatal("oversized diff not reported as truncated")
	}
	if len(res.Text) != limit {
		t.Errorf("bounded length = %d, want %d", len(res.Text), limit)
	}
	if !strings.HasPrefix(diff, res.Text) {
		t.Error("bounded text is not a prefix of the original")
	}
	if res.OriginalLen != limit+500 || res.BoundedLen != limit {
		t.Errorf("lengths = (%d, %d), want (%d, %d)", res.OriginalLen, res.BoundedLen, limit+500, limit)
	}
}

func TestBoundDiffDeterministic(t *testing.T) {
	diff := strings.Repeat("line\n", 5000)

	first := BoundDiff(diff, BackendOpenAI)
	second := BoundDiff(diff, BackendOpenAI)
	if first != second {
		t.Errorf("repeated calls diverged: %+v vs %+v", first, second)
	}
}

func TestBoundDiffUnknownBackendFallsBack(t *testing.T) {
	diff := strings.Repeat("y", defaultDiffLimit+1)

	res := BoundDiff(diff, Backend("mystery"))
	if !res.Truncated {
		t.Fatal("expected truncation at the default limit")
	}
	if res.BoundedLen != defaultDiffLimit {
		t.Errorf("bounded length = %d, want %d", res.BoundedLen, defaultDiffLimit)
	}
}

func TestBoundDiffEmpty(t *testing.T) {
	res := BoundDiff("", BackendAnthropic)
	if res.Truncated || res.Text != "" || res.OriginalLen != 0 {
		t.Errorf("empty diff mishandled: %+v", res)
	}
}

func TestDiffLimitsLeaveHeadroom(t *testing.T) {
	// Limits must differ per backend and never exceed the largest window.
	large := DiffLimit(BackendAnthropic)
	mid := DiffLimit(BackendOpenAI)
	small := DiffLimit(BackendGemini)
	if !(large > mid && mid > small) {
		t.Errorf("limits not ordered: anthropic=%d openai=%d gemini=%d", large, mid, small)
	}
	if DiffLimit(Backend("nope")) != defaultDiffLimit {
		t.Error("unknown backend did not fall back to the default limit")
	}
}
