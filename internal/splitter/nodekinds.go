package splitter

// splittableNodeTypes is the closed per-language set of AST node kinds
// that become their own chunk. These sets are part of the external
// contract: changing them changes chunk-id stability across versions, so
// they must match exactly language-by-language.
var splittableNodeTypes = map[Language]map[string]struct{}{
	LanguagePython: set("function_definition", "class_definition",
		"decorated_definition", "async_function_definition"),
	LanguageTypeScript: set("function_declaration", "class_declaration",
		"method_definition", "interface_declaration", "type_alias_declaration",
		"arrow_function"),
	LanguageTSX: set("function_declaration", "class_declaration",
		"method_definition", "interface_declaration", "type_alias_declaration",
		"arrow_function"),
	LanguageJavaScript: set("function_declaration", "class_declaration",
		"method_definition", "arrow_function"),
	LanguageRust: set("function_item", "impl_item", "struct_item",
		"enum_item", "trait_item", "mod_item"),
	LanguageGo: set("function_declaration", "method_declaration", "type_declaration"),
	LanguageJava: set("method_declaration", "class_declaration",
		"interface_declaration", "constructor_declaration"),
	LanguageCPP: set("function_definition", "class_specifier", "namespace_definition"),
	LanguageC:   set("function_definition"),
	LanguageCSharp: set("method_declaration", "class_declaration",
		"interface_declaration", "struct_declaration", "enum_declaration"),
	LanguageScala: set("method_declaration", "class_declaration",
		"interface_declaration", "constructor_declaration"),
	LanguagePHP:    set("function_definition", "class_declaration", "method_declaration"),
	LanguageRuby:   set("method", "class", "module"),
	LanguageKotlin: nil, // no dedicated grammar in the pack; falls back to line-bounded splitting
}

// commentNodeKinds is the node kind reported as a comment by each
// grammar; used when collecting a leading doc-comment block.
var commentNodeKinds = map[Language]string{
	LanguagePython:     "comment",
	LanguageTypeScript: "comment",
	LanguageTSX:        "comment",
	LanguageJavaScript: "comment",
	LanguageRust:       "line_comment",
	LanguageGo:         "comment",
	LanguageJava:       "line_comment",
	LanguageCPP:        "comment",
	LanguageC:          "comment",
	LanguagePHP:        "comment",
	LanguageRuby:       "comment",
}

// identifierNodeKinds are the node kinds treated as "an identifier" when
// hunting for the first identifier descendant as a chunk-id fallback.
var identifierNodeKinds = set("identifier", "type_identifier", "field_identifier",
	"property_identifier", "constant")

func set(items ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, it := range items {
		m[it] = struct{}{}
	}
	return m
}

func isSplittable(lang Language, nodeType string) bool {
	s, ok := splittableNodeTypes[lang]
	if !ok {
		return false
	}
	_, ok = s[nodeType]
	return ok
}

func isIdentifierKind(nodeType string) bool {
	_, ok := identifierNodeKinds[nodeType]
	return ok
}
