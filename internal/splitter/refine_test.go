package splitter

import (
	"strings"
	"testing"
)

func TestRefine_KeepsSmallChunkAsIs(t *testing.T) {
	u := unit{content: "def f():\n    return 1", startLine: 1, endLine: 2}
	got := refine(u, Config{ChunkSize: 100, ChunkOverlap: 10})
	if len(got) != 1 || got[0].content != u.content {
		t.Fatalf("expected a single unchanged unit, got %+v", got)
	}
}

func TestRefine_SplitsOversizeAndAppliesOverlap(t *testing.T) {
	lines := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		lines = append(lines, "line number stays under the budget")
	}
	content := strings.Join(lines, "\n")
	u := unit{content: content, startLine: 1, endLine: 20, doc: "parent doc", hasDoc: true}

	subs := refine(u, Config{ChunkSize: 200, ChunkOverlap: 20})
	if len(subs) < 2 {
		t.Fatalf("expected the oversize content to split into multiple sub-chunks, got %d", len(subs))
	}
	for _, s := range subs {
		if s.doc != "parent doc" {
			t.Fatalf("expected every sub-chunk to inherit the parent's doc, got %q", s.doc)
		}
	}
	for i := 1; i < len(subs); i++ {
		prevTail := subs[i-1].content
		if len(prevTail) > 20 {
			prevTail = prevTail[len(prevTail)-20:]
		}
		if !strings.HasPrefix(subs[i].content, prevTail) {
			t.Fatalf("expected sub-chunk %d to be prefixed with the previous sub-chunk's tail", i)
		}
	}
}

func TestSplitByLines_TracksStartLineMonotonically(t *testing.T) {
	u := unit{content: "a\nb\nc\nd", startLine: 10, endLine: 13}
	subs := splitByLines(u, 2)
	if len(subs) < 2 {
		t.Fatalf("expected multiple sub-chunks, got %d", len(subs))
	}
	for i := 1; i < len(subs); i++ {
		if subs[i].startLine < subs[i-1].startLine {
			t.Fatalf("start lines must be non-decreasing across sub-chunks: %+v", subs)
		}
	}
}
