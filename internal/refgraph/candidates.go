package refgraph

// candidate is one reference candidate surfaced by the second walk,
// before it is matched against the symbol index.
type candidate struct {
	kind  string // "call" or "identifier"
	name  string
	owner string // "" means unresolved/none
}

// walkCandidates implements step 3 of the CALLS/USES algorithm: a second
// walk over the chunk's subtree, excluding definition nodes, yielding
// call, member-access, plain-identifier, and type-reference candidates.
func walkCandidates(node ASTNode, kinds langKinds, ctx chunkContext, chunkOwner string, source []byte) []candidate {
	var out []candidate

	switch {
	case node.Kind() == kinds.callKind:
		fn := node.ChildByFieldName(kinds.callFunctionField)
		if fn == nil {
			fn = firstPlainIdentifier(node)
		}
		if fn != nil {
			out = append(out, callCandidate(fn, kinds, ctx, chunkOwner, source))
		}
		for _, child := range node.NamedChildren() {
			if fn != nil && sameNode(child, fn, source) {
				continue
			}
			out = append(out, walkCandidates(child, kinds, ctx, chunkOwner, source)...)
		}

	case node.Kind() == kinds.memberKind:
		property := node.ChildByFieldName(kinds.memberPropertyField)
		if property != nil {
			out = append(out, candidate{
				kind:  "identifier",
				name:  property.Text(source),
				owner: resolveOwner(node.ChildByFieldName(kinds.memberObjectField), kinds, ctx, chunkOwner, source),
			})
		}
		for _, child := range node.NamedChildren() {
			if property != nil && sameNode(child, property, source) {
				continue
			}
			out = append(out, walkCandidates(child, kinds, ctx, chunkOwner, source)...)
		}

	case isIdentifierLeaf(node):
		if c, ok := plainIdentifierCandidate(node, ctx, source); ok {
			out = append(out, c)
		}

	case isTypeRefKind(node, kinds):
		out = append(out, candidate{kind: "identifier", name: node.Text(source)})

	default:
		var ownName ASTNode
		if _, ok := kinds.definitionKinds[node.Kind()]; ok {
			ownName = node.ChildByFieldName("name")
		}
		for _, child := range node.NamedChildren() {
			if ownName != nil && sameNode(child, ownName, source) {
				continue
			}
			out = append(out, walkCandidates(child, kinds, ctx, chunkOwner, source)...)
		}
	}

	return out
}

func callCandidate(fn ASTNode, kinds langKinds, ctx chunkContext, chunkOwner string, source []byte) candidate {
	if fn.Kind() == kinds.memberKind {
		property := fn.ChildByFieldName(kinds.memberPropertyField)
		name := fn.Text(source)
		if property != nil {
			name = property.Text(source)
		}
		return candidate{
			kind:  "call",
			name:  name,
			owner: resolveOwner(fn.ChildByFieldName(kinds.memberObjectField), kinds, ctx, chunkOwner, source),
		}
	}
	name := fn.Text(source)
	if aliased, ok := ctx.aliasMap[name]; ok {
		name = aliased
	}
	return candidate{kind: "call", name: name}
}

func plainIdentifierCandidate(node ASTNode, ctx chunkContext, source []byte) (candidate, bool) {
	name := node.Text(source)
	if _, isBinding := ctx.bindings[name]; isBinding {
		return candidate{}, false
	}
	if aliased, ok := ctx.aliasMap[name]; ok {
		name = aliased
	}
	return candidate{kind: "identifier", name: name}, true
}

// resolveOwner implements the member-access owner resolution rule: self
// references resolve to the chunk's own enclosing class; an aliased base
// resolves to its target; a local binding is unresolved; anything else is
// the base name itself.
func resolveOwner(base ASTNode, kinds langKinds, ctx chunkContext, chunkOwner string, source []byte) string {
	if base == nil {
		return ""
	}
	name := base.Text(source)
	if _, isSelf := selfNames[name]; isSelf {
		return chunkOwner
	}
	if aliased, ok := ctx.aliasMap[name]; ok {
		return aliased
	}
	if _, isBinding := ctx.bindings[name]; isBinding {
		return ""
	}
	return name
}

func isIdentifierLeaf(node ASTNode) bool {
	_, ok := identifierKinds[node.Kind()]
	return ok
}

func isTypeRefKind(node ASTNode, kinds langKinds) bool {
	_, ok := kinds.typeRefKinds[node.Kind()]
	return ok
}

func firstPlainIdentifier(node ASTNode) ASTNode {
	for _, child := range node.NamedChildren() {
		if isIdentifierLeaf(child) {
			return child
		}
		if n := firstPlainIdentifier(child); n != nil {
			return n
		}
	}
	return nil
}

func sameNode(a, b ASTNode, source []byte) bool {
	return a.Kind() == b.Kind() && a.Text(source) == b.Text(source)
}
