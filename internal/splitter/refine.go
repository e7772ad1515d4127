package splitter

import "strings"

// unit is one chunk as emitted by the AST walk, before refinement: either
// a single splittable node's span or a whole-file fallback span.
type unit struct {
	content   string
	startLine int
	endLine   int
	doc       string
	hasDoc    bool
}

// refine applies the oversize-chunk post-pass: if content already fits
// within cfg.ChunkSize it is kept as-is; otherwise it is split by lines
// into sub-chunks, each after the first prefixed with overlap text carried
// over from its predecessor. The parent's doc is inherited by every
// sub-chunk.
func refine(u unit, cfg Config) []unit {
	if cfg.ChunkSize <= 0 || len(u.content) <= cfg.ChunkSize {
		return []unit{u}
	}

	subs := splitByLines(u, cfg.ChunkSize)
	if cfg.ChunkOverlap > 0 {
		applyOverlap(subs, cfg.ChunkOverlap)
	}
	return subs
}

// splitByLines accumulates lines into a running buffer, flushing a
// sub-chunk whenever adding the next line would exceed chunkSize and the
// buffer is non-empty. start_line is tracked monotonically across flushes.
func splitByLines(u unit, chunkSize int) []unit {
	lines := strings.Split(u.content, "\n")

	var out []unit
	var buf []string
	bufLen := 0
	bufStartLine := u.startLine
	lineNo := u.startLine

	flush := func(endLine int) {
		if len(buf) == 0 {
			return
		}
		out = append(out, unit{
			content:   strings.TrimSpace(strings.Join(buf, "\n")),
			startLine: bufStartLine,
			endLine:   endLine,
			doc:       u.doc,
			hasDoc:    u.hasDoc,
		})
		buf = nil
		bufLen = 0
	}

	for _, line := range lines {
		addedLen := len(line)
		if bufLen > 0 {
			addedLen++ // joining newline
		}
		if bufLen > 0 && bufLen+addedLen > chunkSize {
			flush(lineNo - 1)
			bufStartLine = lineNo
		}
		if bufLen > 0 {
			bufLen++ // newline before this line
		}
		buf = append(buf, line)
		bufLen += len(line)
		lineNo++
	}
	flush(lineNo - 1)

	if len(out) == 0 {
		out = append(out, u)
	}
	return out
}

// applyOverlap prepends the last chunkOverlap characters of each
// sub-chunk's predecessor to it, separated by a newline, and shifts its
// start_line back by the number of lines in that overlap (floored at 1).
func applyOverlap(subs []unit, chunkOverlap int) {
	for i := 1; i < len(subs); i++ {
		prev := subs[i-1].content
		overlap := prev
		if len(overlap) > chunkOverlap {
			overlap = overlap[len(overlap)-chunkOverlap:]
		}
		if overlap == "" {
			continue
		}

		overlapLines := strings.Count(overlap, "\n") + 1
		subs[i].content = overlap + "\n" + subs[i].content
		subs[i].startLine -= overlapLines
		if subs[i].startLine < 1 {
			subs[i].startLine = 1
		}
	}
}
