package splitter

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Splitter is the tree-sitter-driven syntax-aware chunker.
type Splitter struct {
	cfg Config
}

// New creates a Splitter with the given refinement/doc-extraction config.
func New(cfg Config) *Splitter {
	return &Splitter{cfg: cfg}
}

// Split parses source (the content of relPath) and returns its chunks
// plus the transient side tables the reference-graph builder consumes.
func (s *Splitter) Split(relPath string, source []byte) (*Result, error) {
	lang := DetectLanguage(relPath)

	if lang == LanguageGo {
		return s.splitGo(relPath, source)
	}

	grammar, ok := grammarFor(lang)
	if !ok {
		return s.splitFallback(relPath, source, lang), nil
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(grammar)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return s.splitFallback(relPath, source, lang), nil
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return s.splitFallback(relPath, source, lang), nil
	}

	w := &walker{
		splitter: s,
		lang:     lang,
		source:   source,
		relPath:  normalizePath(relPath),
		result: &Result{
			Nodes:        map[string]NodeHandle{},
			SourceGroups: map[string]string{},
		},
	}
	w.walk(root, "")

	if len(w.result.Chunks) == 0 {
		return s.wholeFileChunk(relPath, source, lang), nil
	}
	return w.result, nil
}

// walker threads the nearest-enclosing-splittable-chunk id down through
// the recursive descent and accumulates the emitted chunks.
type walker struct {
	splitter *Splitter
	lang     Language
	source   []byte
	relPath  string
	result   *Result
}

func (w *walker) walk(node *sitter.Node, parentID string) {
	nextParentID := parentID
	if isSplittable(w.lang, node.Kind()) {
		nextParentID = w.emit(node, parentID)
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if child == nil {
			continue
		}
		w.walk(child, nextParentID)
	}
}

// emit turns one splittable AST node into one or more chunks (after
// refinement), registers them in the result's side tables, and returns
// the node's own chunk id for use as its children's parent id.
func (w *walker) emit(node *sitter.Node, parentID string) string {
	cfg := w.splitter.cfg
	nodeType := node.Kind()
	content := strings.TrimSpace(nodeText(node, w.source))
	if content == "" {
		return parentID
	}

	startLine := int(node.StartPosition().Row) + 1
	endLine := int(node.EndPosition().Row) + 1

	doc, hasDoc := "", false
	if cfg.ExtractDocs {
		if d, ok, excised := extractInlineDocstring(node, w.source); ok {
			doc, hasDoc = d, true
			content = excised
		} else if d, ok := extractLeadingDocComment(node, w.lang, w.source); ok {
			doc, hasDoc = d, true
		}
	}

	identifier := identifierFor(node, w.source)
	unitID := computeChunkID(w.relPath, nodeType, parentID, identifier)

	subs := refine(unit{content: content, startLine: startLine, endLine: endLine, doc: doc, hasDoc: hasDoc}, cfg)

	for i, su := range subs {
		var id string
		if len(subs) == 1 {
			id = unitID
		} else {
			id = computeChunkID(w.relPath, nodeType, parentID, su.content)
		}
		chunk := CodeChunk{
			ID:            id,
			Content:       su.content,
			StartLine:     su.startLine,
			EndLine:       su.endLine,
			Language:      w.lang,
			FilePath:      w.relPath,
			Doc:           su.doc,
			HasDoc:        su.hasDoc,
			ParentChunkID: parentID,
		}
		w.result.Chunks = append(w.result.Chunks, chunk)
		w.result.SourceGroups[id] = unitID
		if i == 0 {
			w.result.Nodes[id] = NodeHandle{Node: wrapNode(node), Source: w.source, Language: w.lang}
		}
	}

	return unitID
}

// identifierFor implements the id formula's identifier rule: the node's
// name field when present, else the first identifier descendant, else
// the node's own source text.
func identifierFor(node *sitter.Node, source []byte) string {
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		return nodeText(nameNode, source)
	}
	if id := firstIdentifierDescendant(node, source); id != "" {
		return id
	}
	return nodeText(node, source)
}

func firstIdentifierDescendant(node *sitter.Node, source []byte) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if child == nil {
			continue
		}
		if isIdentifierKind(child.Kind()) {
			return nodeText(child, source)
		}
		if id := firstIdentifierDescendant(child, source); id != "" {
			return id
		}
	}
	return ""
}

func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	start, end := int(node.StartByte()), int(node.EndByte())
	if end > len(source) {
		end = len(source)
	}
	if start < 0 || start > end {
		return ""
	}
	return string(source[start:end])
}

// extractInlineDocstring implements the Python-style inline docstring
// rule: a body child whose first named statement is an expression
// statement whose first named child is a string literal.
func extractInlineDocstring(node *sitter.Node, source []byte) (doc string, ok bool, excisedContent string) {
	body := node.ChildByFieldName("body")
	if body == nil {
		return "", false, ""
	}
	if int(body.NamedChildCount()) == 0 {
		return "", false, ""
	}
	first := body.NamedChild(0)
	if first == nil || first.Kind() != "expression_statement" {
		return "", false, ""
	}
	if int(first.NamedChildCount()) == 0 {
		return "", false, ""
	}
	lit := first.NamedChild(0)
	if lit == nil || lit.Kind() != "string" {
		return "", false, ""
	}

	raw := nodeText(lit, source)
	doc = stripPythonStringLiteral(raw)

	full := string(source)
	start, end := int(first.StartByte()), int(first.EndByte())
	nodeStart, nodeEnd := int(node.StartByte()), int(node.EndByte())
	if start < 0 || end > len(full) || start > end || nodeStart < 0 || nodeEnd > len(full) {
		return doc, true, nodeText(node, source)
	}

	// Re-slice the excision within the node's own span (coordinates are
	// in the full file's byte space, so shift them to be node-relative).
	relStart, relEnd := start-nodeStart, end-nodeStart
	nodeSrc := nodeText(node, source)
	if relStart < 0 || relEnd > len(nodeSrc) || relStart > relEnd {
		return doc, true, nodeSrc
	}
	excisedContent = strings.TrimSpace(nodeSrc[:relStart] + nodeSrc[relEnd:])
	return doc, true, excisedContent
}

// extractLeadingDocComment collects contiguous preceding sibling comment
// nodes and normalizes them into a doc string, per the leading
// doc-comment-block rule. Comments sit before wrapper nodes (e.g. an
// "export" or visibility-modifier statement) rather than directly before
// the splittable node itself, so the search anchors on the outermost
// ancestor that still starts with this node as its first named child.
func extractLeadingDocComment(node *sitter.Node, lang Language, source []byte) (string, bool) {
	commentKind, ok := commentNodeKinds[lang]
	if !ok {
		return "", false
	}

	anchor := docAnchor(node)

	var texts []string
	cur := anchor.PrevNamedSibling()
	for cur != nil && cur.Kind() == commentKind {
		texts = append([]string{nodeText(cur, source)}, texts...)
		cur = cur.PrevNamedSibling()
	}
	if len(texts) == 0 {
		return "", false
	}
	if !isDocCommentBlock(texts) {
		return "", false
	}
	return normalizeDocComment(texts), true
}

// docAnchor climbs from node to the topmost ancestor that wraps it as its
// first named child (e.g. `export class Foo {}`'s export_statement), since
// that is where a leading doc comment actually precedes.
func docAnchor(node *sitter.Node) *sitter.Node {
	cur := node
	for {
		parent := cur.Parent()
		if parent == nil || int(parent.NamedChildCount()) == 0 {
			return cur
		}
		if parent.NamedChild(0).StartByte() != cur.StartByte() {
			return cur
		}
		cur = parent
	}
}

func (s *Splitter) splitFallback(relPath string, source []byte, lang Language) *Result {
	subs := fallbackSplit(string(source), s.cfg)
	return chunksFromUnits(relPath, lang, subs)
}

func (s *Splitter) wholeFileChunk(relPath string, source []byte, lang Language) *Result {
	lineCount := strings.Count(string(source), "\n") + 1
	whole := unit{content: strings.TrimSpace(string(source)), startLine: 1, endLine: lineCount}
	subs := refine(whole, s.cfg)
	return chunksFromUnits(relPath, lang, subs)
}

func chunksFromUnits(relPath string, lang Language, subs []unit) *Result {
	norm := normalizePath(relPath)
	result := &Result{Nodes: map[string]NodeHandle{}, SourceGroups: map[string]string{}}
	var unitID string
	for i, su := range subs {
		var id string
		if i == 0 {
			unitID = computeChunkID(norm, "file", "", su.content)
			id = unitID
		} else {
			id = computeChunkID(norm, "file", "", su.content)
		}
		result.Chunks = append(result.Chunks, CodeChunk{
			ID:        id,
			Content:   su.content,
			StartLine: su.startLine,
			EndLine:   su.endLine,
			Language:  lang,
			FilePath:  norm,
			Doc:       su.doc,
			HasDoc:    su.hasDoc,
		})
		result.SourceGroups[id] = unitID
	}
	return result
}
