package refgraph

// langKinds is the per-language table of AST node kinds the CALLS/USES
// resolver needs: how a call expression and a member-access expression
// are shaped in that grammar, and which ancestor kinds count as an
// "owner" (class/struct/trait/impl/namespace) for owner-scoped symbol
// resolution.
type langKinds struct {
	callKind           string
	callFunctionField  string // field name on the call node holding the callee
	memberKind         string
	memberObjectField  string
	memberPropertyField string
	ownerKinds         map[string]struct{}
	typeRefKinds       map[string]struct{}
	bindingKinds       map[string]struct{} // node kinds that always introduce a binding (params, etc.)
	definitionKinds    map[string]struct{} // node kinds whose own "name" field must never be a reference candidate
}

var selfNames = set("self", "this", "cls", "super")

func set(items ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, it := range items {
		m[it] = struct{}{}
	}
	return m
}

var pythonKinds = langKinds{
	callKind:            "call",
	callFunctionField:   "function",
	memberKind:          "attribute",
	memberObjectField:   "object",
	memberPropertyField: "attribute",
	ownerKinds:          set("class_definition"),
	typeRefKinds:        set("type"),
	bindingKinds: set("parameter", "identifier_parameter", "default_parameter",
		"typed_parameter", "list_splat_pattern", "dictionary_splat_pattern"),
	definitionKinds: set("function_definition", "class_definition",
		"decorated_definition", "async_function_definition"),
}

// cFamilyKinds is the default used for the C-family languages (and, as a
// best-effort approximation, PHP and Ruby) whose grammars share the
// call_expression/member-access-with-object-and-property shape.
var cFamilyKinds = langKinds{
	callKind:            "call_expression",
	callFunctionField:   "function",
	memberKind:          "member_expression",
	memberObjectField:   "object",
	memberPropertyField: "property",
	ownerKinds:          set("class_declaration", "struct_declaration", "interface_declaration", "namespace_definition", "class_specifier"),
	typeRefKinds:        set("type_identifier"),
	bindingKinds:        set("required_parameter", "optional_parameter", "parameter"),
	definitionKinds: set("function_declaration", "class_declaration", "method_definition",
		"interface_declaration", "type_alias_declaration", "function_definition", "class_specifier"),
}

var rustKinds = langKinds{
	callKind:            "call_expression",
	callFunctionField:   "function",
	memberKind:          "field_expression",
	memberObjectField:   "value",
	memberPropertyField: "field",
	ownerKinds:          set("impl_item", "trait_item", "struct_item", "mod_item"),
	typeRefKinds:        set("type_identifier"),
	bindingKinds:        set("parameter"),
	definitionKinds:     set("function_item", "impl_item", "struct_item", "enum_item", "trait_item", "mod_item"),
}

var javaKinds = langKinds{
	callKind:            "method_invocation",
	callFunctionField:   "name",
	memberKind:          "field_access",
	memberObjectField:   "object",
	memberPropertyField: "field",
	ownerKinds:          set("class_declaration", "interface_declaration"),
	typeRefKinds:        set("type_identifier"),
	bindingKinds:        set("formal_parameter"),
	definitionKinds: set("method_declaration", "class_declaration", "interface_declaration",
		"constructor_declaration"),
}

// goKinds is grounded on internal/splitter's go/ast-backed adapter
// (astnode_go.go), which tags node kinds and field names to mirror the
// tree-sitter grammars' own vocabulary: call_expression/selector_expression
// for calls and member access, and a synthetic type_declaration ancestor
// spliced above a method's FuncDecl carrying its receiver's type name, so
// owner-scoped resolution works the same way it does for a method nested
// inside a class body in the other languages.
var goKinds = langKinds{
	callKind:            "call_expression",
	callFunctionField:   "function",
	memberKind:          "selector_expression",
	memberObjectField:   "object",
	memberPropertyField: "property",
	ownerKinds:          set("type_declaration"),
	typeRefKinds:        set("type_identifier"),
	bindingKinds:        set("parameter", "var_spec"),
	definitionKinds:     set("function_declaration", "method_declaration", "type_declaration"),
}

var rubyKinds = langKinds{
	callKind:            "call",
	callFunctionField:   "method",
	memberKind:          "call",
	memberObjectField:   "receiver",
	memberPropertyField: "method",
	ownerKinds:          set("class", "module"),
	typeRefKinds:        set("constant"),
	bindingKinds:        set("method_parameters", "identifier"),
	definitionKinds:     set("method", "class", "module"),
}

var langKindsByLanguage = map[string]langKinds{
	"python":     pythonKinds,
	"typescript": cFamilyKinds,
	"tsx":        cFamilyKinds,
	"javascript": cFamilyKinds,
	"php":        cFamilyKinds,
	"c":          cFamilyKinds,
	"cpp":        cFamilyKinds,
	"csharp":     cFamilyKinds,
	"rust":       rustKinds,
	"java":       javaKinds,
	"scala":      javaKinds,
	"go":         goKinds,
	"ruby":       rubyKinds,
}

func kindsFor(language string) (langKinds, bool) {
	k, ok := langKindsByLanguage[language]
	return k, ok
}
