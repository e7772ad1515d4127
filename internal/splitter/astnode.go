package splitter

import sitter "github.com/tree-sitter/go-tree-sitter"

// sitterNode adapts *sitter.Node to the ASTNode interface internal/refgraph
// consumes, so that package needs no direct tree-sitter import.
type sitterNode struct {
	n *sitter.Node
}

func wrapNode(n *sitter.Node) ASTNode {
	if n == nil {
		return nil
	}
	return &sitterNode{n: n}
}

func (s *sitterNode) Kind() string { return s.n.Kind() }

func (s *sitterNode) StartLine() int { return int(s.n.StartPosition().Row) + 1 }

func (s *sitterNode) EndLine() int { return int(s.n.EndPosition().Row) + 1 }

func (s *sitterNode) ChildByFieldName(name string) ASTNode {
	return wrapNode(s.n.ChildByFieldName(name))
}

func (s *sitterNode) NamedChildren() []ASTNode {
	count := int(s.n.NamedChildCount())
	out := make([]ASTNode, 0, count)
	for i := 0; i < count; i++ {
		if c := wrapNode(s.n.NamedChild(uint(i))); c != nil {
			out = append(out, c)
		}
	}
	return out
}

func (s *sitterNode) Parent() ASTNode { return wrapNode(s.n.Parent()) }

func (s *sitterNode) PrevNamedSibling() ASTNode { return wrapNode(s.n.PrevNamedSibling()) }

func (s *sitterNode) FieldName() string {
	parent := s.n.Parent()
	if parent == nil {
		return ""
	}
	for i := 0; i < int(parent.ChildCount()); i++ {
		if child := parent.Child(uint(i)); child != nil && child.StartByte() == s.n.StartByte() && child.EndByte() == s.n.EndByte() {
			return parent.FieldNameForChild(uint(i))
		}
	}
	return ""
}

func (s *sitterNode) Text(source []byte) string { return nodeText(s.n, source) }
