package splitter

import (
	"go/ast"
	"go/token"
)

// goNode adapts a go/ast.Node subtree to the ASTNode interface
// internal/refgraph consumes, the same role sitterNode plays for the
// tree-sitter grammars. go/ast carries no parent pointers and no
// generic field-name lookup, so both are reconstructed here while
// wrapping each chunk's root declaration: a child's semantic field name
// ("function", "object", "property", "name", "type", "left") mirrors
// the field a tree-sitter grammar would use for the same relationship,
// so internal/refgraph's call/selector/binding rules apply to Go chunks
// unchanged.
type goNode struct {
	fset     *token.FileSet
	node     ast.Node // nil only for the synthetic receiver-owner node
	kind     string
	field    string
	parent   *goNode
	children []*goNode
	text     string // used only when node is nil
}

// wrapGoFunc wraps a top-level function or method declaration as the AST
// node attached to its chunk. For a method, a synthetic "type_declaration"
// ancestor carrying the receiver's type name is spliced in above it, so
// ownerName's ancestor walk resolves the method to its receiver type the
// same way it would resolve a method nested inside a class body in the
// other grammars.
func wrapGoFunc(fset *token.FileSet, decl *ast.FuncDecl) ASTNode {
	kind := "function_declaration"
	if decl.Recv != nil {
		kind = "method_declaration"
	}
	root := &goNode{fset: fset, node: decl, kind: kind}
	if owner := receiverTypeName(decl.Recv); owner != "" {
		ownerNode := &goNode{fset: fset, kind: "type_declaration", text: owner}
		ownerNode.children = []*goNode{{fset: fset, kind: "identifier", field: "name", text: owner, parent: ownerNode}}
		root.parent = ownerNode
	}
	root.children = goDeclChildren(fset, root, decl)
	return root
}

// wrapGoType wraps a top-level type declaration as the AST node attached
// to its chunk.
func wrapGoType(fset *token.FileSet, ts *ast.TypeSpec) ASTNode {
	root := &goNode{fset: fset, node: ts, kind: "type_declaration"}
	root.children = goChildren(fset, root, ts)
	return root
}

func receiverTypeName(recv *ast.FieldList) string {
	if recv == nil || len(recv.List) == 0 {
		return ""
	}
	return typeNameOf(recv.List[0].Type)
}

func typeNameOf(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return typeNameOf(t.X)
	case *ast.IndexExpr:
		return typeNameOf(t.X)
	case *ast.IndexListExpr:
		return typeNameOf(t.X)
	default:
		return ""
	}
}

func (g *goNode) Kind() string { return g.kind }

func (g *goNode) StartLine() int {
	if g.node == nil {
		return 0
	}
	return g.fset.Position(g.node.Pos()).Line
}

func (g *goNode) EndLine() int {
	if g.node == nil {
		return 0
	}
	return g.fset.Position(g.node.End()).Line
}

func (g *goNode) ChildByFieldName(name string) ASTNode {
	for _, c := range g.children {
		if c.field == name {
			return c
		}
	}
	return nil
}

func (g *goNode) NamedChildren() []ASTNode {
	out := make([]ASTNode, 0, len(g.children))
	for _, c := range g.children {
		out = append(out, c)
	}
	return out
}

func (g *goNode) Parent() ASTNode {
	if g.parent == nil {
		return nil
	}
	return g.parent
}

func (g *goNode) PrevNamedSibling() ASTNode {
	if g.parent == nil {
		return nil
	}
	for i, c := range g.parent.children {
		if c == g {
			if i == 0 {
				return nil
			}
			return g.parent.children[i-1]
		}
	}
	return nil
}

func (g *goNode) FieldName() string { return g.field }

func (g *goNode) Text(source []byte) string {
	if g.node == nil {
		return g.text
	}
	start := g.fset.Position(g.node.Pos()).Offset
	end := g.fset.Position(g.node.End()).Offset
	if start < 0 || end > len(source) || start > end {
		return ""
	}
	return string(source[start:end])
}

// wrapChild wraps a single child under field, tagging its kind from both
// its own concrete type and the field it's held under (an identifier
// held under "type" is tagged "type_identifier" rather than plain
// "identifier", matching the other grammars' distinct type-reference
// node kinds). Returns nil for a nil child so callers can append freely
// and compact() at the end.
func wrapChild(fset *token.FileSet, parent *goNode, field string, n ast.Node) *goNode {
	if n == nil {
		return nil
	}
	g := &goNode{fset: fset, node: n, field: field, parent: parent, kind: goKind(n, field)}
	g.children = goChildren(fset, g, n)
	return g
}

func wrapFields(fset *token.FileSet, parent *goNode, field string, idents []*ast.Ident) []*goNode {
	out := make([]*goNode, 0, len(idents))
	for _, id := range idents {
		if id == nil {
			continue
		}
		out = append(out, wrapChild(fset, parent, field, id))
	}
	return out
}

func compact(children []*goNode) []*goNode {
	out := children[:0]
	for _, c := range children {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// goKind derives this package's node-kind vocabulary for a go/ast node,
// enough to drive internal/refgraph's call/member/binding/type-reference
// rules. Nodes with no special meaning to the resolver keep a generic,
// non-colliding kind string; walkCandidates's default case still recurses
// into their children.
func goKind(n ast.Node, field string) string {
	switch v := n.(type) {
	case *ast.CallExpr:
		return "call_expression"
	case *ast.SelectorExpr:
		return "selector_expression"
	case *ast.Ident:
		if field == "type" {
			return "type_identifier"
		}
		return "identifier"
	case *ast.Field:
		return "parameter"
	case *ast.ValueSpec:
		return "var_spec"
	case *ast.FuncDecl:
		if v.Recv != nil {
			return "method_declaration"
		}
		return "function_declaration"
	case *ast.TypeSpec:
		return "type_declaration"
	case *ast.AssignStmt:
		return "assignment"
	default:
		return "node"
	}
}

// goChildren builds the semantic named children of n, tagging the field
// names internal/refgraph's binding/call/selector rules key off of. It
// covers the statement and expression shapes that appear in ordinary Go
// function bodies and type declarations; constructs it doesn't recognize
// simply contribute no children, which only means no further edges are
// found inside them, not an error.
func goChildren(fset *token.FileSet, parent *goNode, n ast.Node) []*goNode {
	switch v := n.(type) {
	case *ast.TypeSpec:
		out := wrapFields(fset, parent, "name", []*ast.Ident{v.Name})
		out = append(out, wrapChild(fset, parent, "type", v.Type))
		return compact(out)

	case *ast.Ellipsis:
		return compact([]*goNode{wrapChild(fset, parent, "", v.Elt)})
	case *ast.FuncLit:
		return compact([]*goNode{wrapChild(fset, parent, "", v.Type), wrapChild(fset, parent, "", v.Body)})
	case *ast.CompositeLit:
		out := []*goNode{wrapChild(fset, parent, "type", v.Type)}
		for _, e := range v.Elts {
			out = append(out, wrapChild(fset, parent, "", e))
		}
		return compact(out)
	case *ast.ParenExpr:
		return compact([]*goNode{wrapChild(fset, parent, "", v.X)})
	case *ast.SelectorExpr:
		return compact([]*goNode{
			wrapChild(fset, parent, "object", v.X),
			wrapChild(fset, parent, "property", v.Sel),
		})
	case *ast.IndexExpr:
		return compact([]*goNode{wrapChild(fset, parent, "", v.X), wrapChild(fset, parent, "", v.Index)})
	case *ast.IndexListExpr:
		out := []*goNode{wrapChild(fset, parent, "", v.X)}
		for _, idx := range v.Indices {
			out = append(out, wrapChild(fset, parent, "", idx))
		}
		return compact(out)
	case *ast.SliceExpr:
		return compact([]*goNode{
			wrapChild(fset, parent, "", v.X), wrapChild(fset, parent, "", v.Low),
			wrapChild(fset, parent, "", v.High), wrapChild(fset, parent, "", v.Max),
		})
	case *ast.TypeAssertExpr:
		return compact([]*goNode{wrapChild(fset, parent, "", v.X), wrapChild(fset, parent, "type", v.Type)})
	case *ast.CallExpr:
		out := []*goNode{wrapChild(fset, parent, "function", v.Fun)}
		for _, a := range v.Args {
			out = append(out, wrapChild(fset, parent, "", a))
		}
		return compact(out)
	case *ast.StarExpr:
		return compact([]*goNode{wrapChild(fset, parent, "", v.X)})
	case *ast.UnaryExpr:
		return compact([]*goNode{wrapChild(fset, parent, "", v.X)})
	case *ast.BinaryExpr:
		return compact([]*goNode{wrapChild(fset, parent, "", v.X), wrapChild(fset, parent, "", v.Y)})
	case *ast.KeyValueExpr:
		return compact([]*goNode{wrapChild(fset, parent, "", v.Key), wrapChild(fset, parent, "", v.Value)})

	case *ast.ArrayType:
		return compact([]*goNode{wrapChild(fset, parent, "", v.Len), wrapChild(fset, parent, "type", v.Elt)})
	case *ast.StructType:
		return fieldListChildren(fset, parent, v.Fields)
	case *ast.FuncType:
		out := fieldListChildren(fset, parent, v.Params)
		if v.Results != nil {
			out = append(out, fieldListChildren(fset, parent, v.Results)...)
		}
		return out
	case *ast.InterfaceType:
		return fieldListChildren(fset, parent, v.Methods)
	case *ast.MapType:
		return compact([]*goNode{wrapChild(fset, parent, "type", v.Key), wrapChild(fset, parent, "type", v.Value)})
	case *ast.ChanType:
		return compact([]*goNode{wrapChild(fset, parent, "type", v.Value)})
	case *ast.Field:
		out := wrapFields(fset, parent, "name", v.Names)
		out = append(out, wrapChild(fset, parent, "type", v.Type))
		return compact(out)
	case *ast.FieldList:
		return fieldListChildren(fset, parent, v)

	case *ast.DeclStmt:
		return compact([]*goNode{wrapChild(fset, parent, "", v.Decl)})
	case *ast.LabeledStmt:
		return compact([]*goNode{wrapChild(fset, parent, "", v.Stmt)})
	case *ast.ExprStmt:
		return compact([]*goNode{wrapChild(fset, parent, "", v.X)})
	case *ast.SendStmt:
		return compact([]*goNode{wrapChild(fset, parent, "", v.Chan), wrapChild(fset, parent, "", v.Value)})
	case *ast.IncDecStmt:
		return compact([]*goNode{wrapChild(fset, parent, "", v.X)})
	case *ast.AssignStmt:
		out := make([]*goNode, 0, len(v.Lhs)+len(v.Rhs))
		for _, l := range v.Lhs {
			out = append(out, wrapChild(fset, parent, "left", l))
		}
		for _, r := range v.Rhs {
			out = append(out, wrapChild(fset, parent, "right", r))
		}
		return compact(out)
	case *ast.GoStmt:
		return compact([]*goNode{wrapChild(fset, parent, "", v.Call)})
	case *ast.DeferStmt:
		return compact([]*goNode{wrapChild(fset, parent, "", v.Call)})
	case *ast.ReturnStmt:
		out := make([]*goNode, 0, len(v.Results))
		for _, r := range v.Results {
			out = append(out, wrapChild(fset, parent, "", r))
		}
		return compact(out)
	case *ast.BlockStmt:
		out := make([]*goNode, 0, len(v.List))
		for _, s := range v.List {
			out = append(out, wrapChild(fset, parent, "", s))
		}
		return compact(out)
	case *ast.IfStmt:
		out := []*goNode{wrapChild(fset, parent, "", v.Init), wrapChild(fset, parent, "", v.Cond), wrapChild(fset, parent, "", v.Body)}
		if v.Else != nil {
			out = append(out, wrapChild(fset, parent, "", v.Else))
		}
		return compact(out)
	case *ast.CaseClause:
		out := make([]*goNode, 0, len(v.List)+len(v.Body))
		for _, e := range v.List {
			out = append(out, wrapChild(fset, parent, "", e))
		}
		for _, s := range v.Body {
			out = append(out, wrapChild(fset, parent, "", s))
		}
		return compact(out)
	case *ast.SwitchStmt:
		out := []*goNode{wrapChild(fset, parent, "", v.Init), wrapChild(fset, parent, "", v.Tag)}
		if v.Body != nil {
			out = append(out, wrapChild(fset, parent, "", v.Body))
		}
		return compact(out)
	case *ast.TypeSwitchStmt:
		out := []*goNode{wrapChild(fset, parent, "", v.Init), wrapChild(fset, parent, "", v.Assign)}
		if v.Body != nil {
			out = append(out, wrapChild(fset, parent, "", v.Body))
		}
		return compact(out)
	case *ast.CommClause:
		out := []*goNode{wrapChild(fset, parent, "", v.Comm)}
		for _, s := range v.Body {
			out = append(out, wrapChild(fset, parent, "", s))
		}
		return compact(out)
	case *ast.SelectStmt:
		if v.Body == nil {
			return nil
		}
		return compact([]*goNode{wrapChild(fset, parent, "", v.Body)})
	case *ast.ForStmt:
		out := []*goNode{
			wrapChild(fset, parent, "", v.Init), wrapChild(fset, parent, "", v.Cond),
			wrapChild(fset, parent, "", v.Post), wrapChild(fset, parent, "", v.Body),
		}
		return compact(out)
	case *ast.RangeStmt:
		out := []*goNode{
			wrapChild(fset, parent, "left", v.Key), wrapChild(fset, parent, "left", v.Value),
			wrapChild(fset, parent, "", v.X), wrapChild(fset, parent, "", v.Body),
		}
		return compact(out)

	case *ast.GenDecl:
		out := make([]*goNode, 0, len(v.Specs))
		for _, s := range v.Specs {
			out = append(out, wrapChild(fset, parent, "", s))
		}
		return compact(out)
	case *ast.ValueSpec:
		out := wrapFields(fset, parent, "name", v.Names)
		out = append(out, wrapChild(fset, parent, "type", v.Type))
		for _, val := range v.Values {
			out = append(out, wrapChild(fset, parent, "", val))
		}
		return compact(out)
	case *ast.ImportSpec:
		if v.Name == nil {
			return nil
		}
		return compact([]*goNode{wrapChild(fset, parent, "", v.Name)})

	default:
		return nil
	}
}

func fieldListChildren(fset *token.FileSet, parent *goNode, fl *ast.FieldList) []*goNode {
	if fl == nil {
		return nil
	}
	out := make([]*goNode, 0, len(fl.List))
	for _, f := range fl.List {
		out = append(out, wrapChild(fset, parent, "", f))
	}
	return compact(out)
}

// goDeclChildren builds a FuncDecl's own children: its name, the
// receiver's fields (for binding purposes only — a method's receiver
// variable must resolve as a binding the same way an ordinary parameter
// does), its signature, and its body.
func goDeclChildren(fset *token.FileSet, parent *goNode, decl *ast.FuncDecl) []*goNode {
	out := wrapFields(fset, parent, "name", []*ast.Ident{decl.Name})
	if decl.Recv != nil {
		out = append(out, fieldListChildren(fset, parent, decl.Recv)...)
	}
	out = append(out, wrapChild(fset, parent, "", decl.Type))
	if decl.Body != nil {
		out = append(out, wrapChild(fset, parent, "", decl.Body))
	}
	return compact(out)
}
