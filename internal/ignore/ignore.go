// Package ignore implements the layered, negation-aware ignore-rule
// evaluator described in spec §4.1: global patterns plus ancestor
// .gitignore patterns, applied root-to-leaf, "last match wins".
package ignore

import (
	"bufio"
	"os"
	"path"
	"strings"

	"github.com/gobwas/glob"
)

// SupportedExtensions is the closed set of source extensions the core
// understands (spec §6). A non-directory file whose extension is not in
// this set is ignored unconditionally by Evaluator.IsIgnored.
var SupportedExtensions = map[string]string{
	".ts":    "typescript",
	".tsx":   "typescript",
	".js":    "javascript",
	".jsx":   "javascript",
	".py":    "python",
	".java":  "java",
	".cpp":   "cpp",
	".hpp":   "cpp",
	".cc":    "cpp",
	".c":     "c",
	".h":     "c",
	".cs":    "csharp",
	".go":    "go",
	".rs":    "rust",
	".php":   "php",
	".rb":    "ruby",
	".swift": "swift",
	".kt":    "kotlin",
	".scala": "scala",
}

// pattern is one parsed ignore-rule line.
type pattern struct {
	negate    bool
	dirOnly   bool
	anchored  bool // leading '/' - anchored to baseDir
	hasSlash  bool // pattern contains '/' other than trailing - matched as path pattern
	baseDir   string
	raw       string // pattern text after stripping '!' and leading/trailing '/'
	compiled  glob.Glob
}

// Evaluator resolves ignored status for normalized forward-slash relative
// paths against a set of global patterns plus ancestor .gitignore files.
type Evaluator struct {
	global []pattern

	// gitignoreByDir caches parsed .gitignore patterns keyed by the
	// root-relative directory that contains them ("" for the root).
	gitignoreByDir map[string][]pattern
}

// NewEvaluator creates an Evaluator seeded with global glob patterns
// (e.g. from configuration's ignore_patterns).
func NewEvaluator(globalPatterns []string) *Evaluator {
	e := &Evaluator{
		gitignoreByDir: make(map[string][]pattern),
	}
	e.global = compilePatterns(globalPatterns, "")
	return e
}

// LoadGitignore parses a .gitignore file's content and caches its
// patterns under dir, the root-relative directory containing that file
// (forward-slash, "" for the codebase root).
func (e *Evaluator) LoadGitignore(dir string, content []byte) {
	lines := splitLines(content)
	e.gitignoreByDir[dir] = compilePatterns(lines, dir)
}

// LoadGitignoreFile reads and parses a .gitignore file from disk, if
// present. It is not an error for the file to be absent.
func (e *Evaluator) LoadGitignoreFile(dir, absPath string) error {
	data, err := os.ReadFile(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	e.LoadGitignore(dir, data)
	return nil
}

func splitLines(content []byte) []string {
	var lines []string
	sc := bufio.NewScanner(strings.NewReader(string(content)))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines
}

// IsIgnored resolves whether relPath (a normalized, forward-slash,
// codebase-root-relative path) is ignored. isDir indicates whether the
// path names a directory.
//
// Evaluation order, last-match-wins:
//  1. Any path component beginning with '.' is ignored unconditionally.
//  2. Non-directory files whose extension is not in SupportedExtensions
//     are ignored unconditionally.
//  3. Global patterns, in construction order.
//  4. Ancestor .gitignore patterns, root directory first, leaf last.
func (e *Evaluator) IsIgnored(relPath string, isDir bool) bool {
	relPath = strings.Trim(path.Clean(relPath), "/")
	if relPath == "." || relPath == "" {
		return false
	}

	for _, comp := range strings.Split(relPath, "/") {
		if strings.HasPrefix(comp, ".") {
			return true
		}
	}

	if !isDir {
		ext := extOf(relPath)
		if _, ok := SupportedExtensions[ext]; !ok {
			return true
		}
	}

	ignored := false
	for _, p := range e.global {
		if matches(p, relPath, isDir) {
			ignored = !p.negate
		}
	}

	for _, dir := range ancestorDirsRootFirst(relPath) {
		for _, p := range e.gitignoreByDir[dir] {
			if matches(p, relPath, isDir) {
				ignored = !p.negate
			}
		}
	}

	return ignored
}

// ancestorDirsRootFirst returns every ancestor directory of relPath
// (root-relative, "" for the codebase root) ordered root-to-leaf,
// including the directory directly containing relPath.
func ancestorDirsRootFirst(relPath string) []string {
	dir := path.Dir(relPath)
	if dir == "." {
		return []string{""}
	}
	parts := strings.Split(dir, "/")
	dirs := make([]string, 0, len(parts)+1)
	dirs = append(dirs, "")
	cur := ""
	for _, part := range parts {
		if cur == "" {
			cur = part
		} else {
			cur = cur + "/" + part
		}
		dirs = append(dirs, cur)
	}
	return dirs
}

func extOf(relPath string) string {
	base := path.Base(relPath)
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		return strings.ToLower(base[i:])
	}
	return ""
}

func compilePatterns(lines []string, baseDir string) []pattern {
	var out []pattern
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p := pattern{baseDir: baseDir}

		if strings.HasPrefix(line, "!") {
			p.negate = true
			line = line[1:]
		}

		// Unescape a leading '\#' or '\!' (literal marker).
		if strings.HasPrefix(line, `\#`) || strings.HasPrefix(line, `\!`) {
			line = line[1:]
		}

		if strings.HasSuffix(line, "/") {
			p.dirOnly = true
			line = strings.TrimSuffix(line, "/")
		}

		if strings.HasPrefix(line, "/") {
			p.anchored = true
			line = strings.TrimPrefix(line, "/")
		}

		p.hasSlash = strings.Contains(line, "/")
		p.raw = line

		g, err := glob.Compile(line, '/')
		if err != nil {
			continue
		}
		p.compiled = g
		out = append(out, p)
	}
	return out
}

// matches reports whether pattern p matches relPath, honoring its
// directory-only, anchored, and path-vs-basename semantics.
func matches(p pattern, relPath string, isDir bool) bool {
	if p.dirOnly && !isDir {
		return false
	}

	// Path relative to the pattern's .gitignore directory.
	rel := relPath
	if p.baseDir != "" {
		prefix := p.baseDir + "/"
		if !strings.HasPrefix(relPath, prefix) {
			return false
		}
		rel = strings.TrimPrefix(relPath, prefix)
	}

	if p.anchored || p.hasSlash {
		if p.compiled.Match(rel) {
			return true
		}
		// gitignore also lets an anchored directory pattern match any
		// path nested under a matched directory component.
		for _, seg := range allPrefixes(rel) {
			if p.compiled.Match(seg) {
				return true
			}
		}
		return false
	}

	// No slash and not anchored: match against the basename of every
	// path component.
	for _, comp := range strings.Split(rel, "/") {
		if p.compiled.Match(comp) {
			return true
		}
	}
	return false
}

// allPrefixes returns every leading path-component prefix of rel, e.g.
// "a/b/c" -> ["a", "a/b", "a/b/c"].
func allPrefixes(rel string) []string {
	parts := strings.Split(rel, "/")
	prefixes := make([]string, 0, len(parts))
	cur := ""
	for _, part := range parts {
		if cur == "" {
			cur = part
		} else {
			cur = cur + "/" + part
		}
		prefixes = append(prefixes, cur)
	}
	return prefixes
}
