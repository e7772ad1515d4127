package refgraph

import "testing"

// fakeNode is a minimal hand-built ASTNode double used to exercise Build
// without depending on a real tree-sitter parse (internal/splitter already
// covers that integration at the parser layer).
type fakeNode struct {
	kind     string
	field    string
	text     string
	children []*fakeNode
	parent   *fakeNode
}

func mk(kind, field, text string, children ...*fakeNode) *fakeNode {
	n := &fakeNode{kind: kind, field: field, text: text, children: children}
	for _, c := range children {
		c.parent = n
	}
	return n
}

func (n *fakeNode) Kind() string { return n.kind }
func (n *fakeNode) FieldName() string { return n.field }

func (n *fakeNode) Parent() ASTNode {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *fakeNode) NamedChildren() []ASTNode {
	out := make([]ASTNode, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *fakeNode) ChildByFieldName(name string) ASTNode {
	for _, c := range n.children {
		if c.field == name {
			return c
		}
	}
	return nil
}

func (n *fakeNode) PrevNamedSibling() ASTNode {
	if n.parent == nil {
		return nil
	}
	var prev *fakeNode
	for _, c := range n.parent.children {
		if c == n {
			break
		}
		prev = c
	}
	if prev == nil {
		return nil
	}
	return prev
}

func (n *fakeNode) Text(source []byte) string { return n.text }

func TestBuild_ParentOfFromParentChunkID(t *testing.T) {
	chunks := []ChunkRef{
		{ID: "class", FilePath: "a.py"},
		{ID: "method", FilePath: "a.py", ParentChunkID: "class"},
		{ID: "orphan", FilePath: "a.py", ParentChunkID: "does-not-exist"},
	}

	edges := Build(chunks, true)

	if !hasEdge(edges, "class", "method", EdgeParentOf) {
		t.Fatal("expected PARENT_OF edge from class to method")
	}
	for _, e := range edges {
		if e.Type == EdgeParentOf && e.TargetID == "orphan" {
			t.Fatal("must not emit PARENT_OF edges for an unresolved parent id")
		}
	}
}

func TestBuild_ContinuesOrdersBySourceGroup(t *testing.T) {
	chunks := []ChunkRef{
		{ID: "part2", FilePath: "a.py", SourceGroupID: "g1", StartLine: 20, EndLine: 30},
		{ID: "part1", FilePath: "a.py", SourceGroupID: "g1", StartLine: 1, EndLine: 19},
		{ID: "part3", FilePath: "a.py", SourceGroupID: "g1", StartLine: 31, EndLine: 40},
		{ID: "lone", FilePath: "a.py", SourceGroupID: "g2", StartLine: 1, EndLine: 5},
	}

	edges := Build(chunks, true)

	if !hasEdge(edges, "part1", "part2", EdgeContinues) {
		t.Fatal("expected CONTINUES edge part1 -> part2")
	}
	if !hasEdge(edges, "part2", "part3", EdgeContinues) {
		t.Fatal("expected CONTINUES edge part2 -> part3")
	}
	if hasEdge(edges, "part1", "part3", EdgeContinues) {
		t.Fatal("must not link non-adjacent sub-chunks directly")
	}
	for _, e := range edges {
		if e.Type == EdgeContinues && (e.SourceID == "lone" || e.TargetID == "lone") {
			t.Fatal("a lone source group must not produce CONTINUES edges")
		}
	}
}

func TestBuild_CallsEdgeResolvesThroughSymbolIndex(t *testing.T) {
	// class Greeter: def greet(self): ...
	classNode := mk("class_definition", "", "Greeter",
		mk("identifier", "name", "Greeter"))

	// def make_greeter(): return Greeter()
	callNode := mk("call", "", "",
		mk("identifier", "function", "Greeter"))
	fnNode := mk("function_definition", "", "make_greeter",
		mk("identifier", "name", "make_greeter"),
		mk("block", "body", "", callNode))

	chunks := []ChunkRef{
		{ID: "class", FilePath: "greeter.py", Language: "python", Node: classNode},
		{ID: "make_greeter", FilePath: "greeter.py", Language: "python", Node: fnNode},
	}

	edges := Build(chunks, true)

	if !hasEdge(edges, "make_greeter", "class", EdgeCalls) {
		t.Fatalf("expected CALLS edge make_greeter -> class, got %+v", edges)
	}
}

func TestBuild_CallsEdgeSkippedWithinSameFileWhenIntraFileDisabled(t *testing.T) {
	classNode := mk("class_definition", "", "Greeter",
		mk("identifier", "name", "Greeter"))
	callNode := mk("call", "", "",
		mk("identifier", "function", "Greeter"))
	fnNode := mk("function_definition", "", "make_greeter",
		mk("identifier", "name", "make_greeter"),
		mk("block", "body", "", callNode))

	chunks := []ChunkRef{
		{ID: "class", FilePath: "greeter.py", Language: "python", Node: classNode},
		{ID: "make_greeter", FilePath: "greeter.py", Language: "python", Node: fnNode},
	}

	edges := Build(chunks, false)

	if hasEdge(edges, "make_greeter", "class", EdgeCalls) {
		t.Fatal("same-file CALLS edge must be suppressed when includeIntraFileRefs is false")
	}
}

func TestBuild_CallsEdgeAcrossFilesAlwaysIncluded(t *testing.T) {
	classNode := mk("class_definition", "", "Greeter",
		mk("identifier", "name", "Greeter"))
	callNode := mk("call", "", "",
		mk("identifier", "function", "Greeter"))
	fnNode := mk("function_definition", "", "make_greeter",
		mk("identifier", "name", "make_greeter"),
		mk("block", "body", "", callNode))

	chunks := []ChunkRef{
		{ID: "class", FilePath: "greeter.py", Language: "python", Node: classNode},
		{ID: "make_greeter", FilePath: "factory.py", Language: "python", Node: fnNode},
	}

	edges := Build(chunks, false)

	if !hasEdge(edges, "make_greeter", "class", EdgeCalls) {
		t.Fatal("cross-file CALLS edges must be emitted regardless of includeIntraFileRefs")
	}
}

func hasEdge(edges []Edge, source, target string, typ EdgeType) bool {
	for _, e := range edges {
		if e.SourceID == source && e.TargetID == target && e.Type == typ {
			return true
		}
	}
	return false
}
