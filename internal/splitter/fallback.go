package splitter

import "strings"

// fallbackSplit implements the line-bounded text splitter used when a
// file's extension is unsupported or its parser fails: it is exactly the
// refinement post-pass applied to a single whole-file unit, so a huge
// unparseable file still respects chunk_size and chunk_overlap.
func fallbackSplit(source string, cfg Config) []unit {
	lineCount := strings.Count(source, "\n") + 1
	whole := unit{content: source, startLine: 1, endLine: lineCount}
	return refine(whole, cfg)
}
