package refgraph

// chunkContext is the per-chunk analysis state step 2 of the algorithm
// computes: the binding identifiers introduced inside the chunk, an
// alias map from local name to imported/assigned source name, and extra
// reference candidates synthesized from import aliases.
type chunkContext struct {
	bindings        map[string]struct{}
	aliasMap        map[string]string
	extraCandidates []candidate
}

// pythonAliasFieldParents are the Python constructs whose "name" field
// introduces a binding (spec §4.6's Python-specific binding rules); the
// "alias" field case is handled uniformly for every language below.
var pythonAliasFieldParents = set("except_clause", "capture_pattern", "named_expression")

func buildChunkContext(node ASTNode, kinds langKinds, language string, source []byte) chunkContext {
	ctx := chunkContext{bindings: map[string]struct{}{}, aliasMap: map[string]string{}}
	walkBindings(node, kinds, language, source, &ctx)
	return ctx
}

func walkBindings(node ASTNode, kinds langKinds, language string, source []byte, ctx *chunkContext) {
	for _, child := range node.NamedChildren() {
		field := child.FieldName()
		parentKind := node.Kind()

		switch {
		case field == "name" && isBindingParent(parentKind, kinds):
			addBinding(ctx, child, source)
		case field == "left":
			addBinding(ctx, child, source)
		case field == "name" && parentKind == "variable_declarator":
			addBinding(ctx, child, source)
		case language == "python" && field == "name" && isPythonAliasFieldParent(parentKind):
			addBinding(ctx, child, source)
		case field == "alias":
			aliasID := identifierText(child, source)
			if aliasID != "" {
				ctx.bindings[aliasID] = struct{}{}
				if src := aliasSource(node, source); src != "" {
					ctx.aliasMap[aliasID] = src
					if parentKind == "aliased_import" || parentKind == "import_specifier" {
						ctx.extraCandidates = append(ctx.extraCandidates, candidate{kind: "identifier", name: src})
					}
				}
			}
		}

		walkBindings(child, kinds, language, source, ctx)
	}
}

func isBindingParent(kind string, kinds langKinds) bool {
	_, ok := kinds.bindingKinds[kind]
	return ok
}

func isPythonAliasFieldParent(kind string) bool {
	_, ok := pythonAliasFieldParents[kind]
	return ok
}

func addBinding(ctx *chunkContext, nameNode ASTNode, source []byte) {
	if id := identifierText(nameNode, source); id != "" {
		ctx.bindings[id] = struct{}{}
	}
}

func identifierText(node ASTNode, source []byte) string {
	if _, ok := identifierKinds[node.Kind()]; ok {
		return node.Text(source)
	}
	for _, child := range node.NamedChildren() {
		if t := identifierText(child, source); t != "" {
			return t
		}
	}
	return ""
}

func aliasSource(parent ASTNode, source []byte) string {
	for _, field := range []string{"name", "value", "module_name"} {
		if c := parent.ChildByFieldName(field); c != nil {
			return dottedName(c, source)
		}
	}
	return ""
}

func dottedName(node ASTNode, source []byte) string {
	if node.Kind() != "dotted_name" {
		return node.Text(source)
	}
	parts := node.NamedChildren()
	if len(parts) == 0 {
		return node.Text(source)
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "."
		}
		out += p.Text(source)
	}
	return out
}
