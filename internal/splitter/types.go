// Package splitter implements the tree-sitter-driven syntax-aware chunker:
// dispatch by file extension to a per-language grammar, walk the resulting
// AST emitting one chunk per splittable node, attach extracted
// documentation, and refine oversize chunks into overlapping sub-chunks.
package splitter

// Language is the chunk's reported language tag. Unsupported extensions and
// parse failures fall back to LanguageText, the line-bounded splitter's tag.
type Language string

const (
	LanguagePython     Language = "python"
	LanguageTypeScript Language = "typescript"
	LanguageTSX        Language = "tsx"
	LanguageJavaScript Language = "javascript"
	LanguageJava       Language = "java"
	LanguageC          Language = "c"
	LanguageCPP        Language = "cpp"
	LanguagePHP        Language = "php"
	LanguageRuby       Language = "ruby"
	LanguageRust       Language = "rust"
	LanguageGo         Language = "go"
	LanguageCSharp     Language = "csharp"
	LanguageKotlin     Language = "kotlin"
	LanguageScala      Language = "scala"
	LanguageText       Language = "text"
)

// CodeChunk is one semantically meaningful slice of a source file.
type CodeChunk struct {
	ID            string
	Content       string
	StartLine     int
	EndLine       int
	Language      Language
	FilePath      string
	Doc           string
	HasDoc        bool
	ParentChunkID string
}

// Config governs doc extraction and oversize-chunk refinement.
type Config struct {
	ChunkSize    int
	ChunkOverlap int
	ExtractDocs  bool
}

// DefaultConfig mirrors internal/config.Default()'s chunking values, so
// tests constructing a splitter directly see the same chunk_size/overlap
// budget as the CLI's real runtime default.
func DefaultConfig() Config {
	return Config{ChunkSize: 2500, ChunkOverlap: 300, ExtractDocs: true}
}

// Result is everything Split produces: the chunks to persist, plus two
// transient side tables the reference-graph builder consumes and then
// drops before chunks cross the indexing boundary. Neither table is
// persisted alongside the chunks.
type Result struct {
	Chunks []CodeChunk

	// Nodes maps a chunk ID to the AST node/tree/source it was derived
	// from, for chunks produced directly from an AST node (for a node
	// split by refinement, only its first sub-chunk; never fallback text
	// chunks). Consumed only by
	// internal/refgraph during CALLS/USES resolution.
	Nodes map[string]NodeHandle

	// SourceGroups maps every chunk ID (including refinement sub-chunks)
	// to the id of the pre-refinement unit it was split from. Chunks
	// sharing a SourceGroups value came from the same AST node and are
	// CONTINUES-linked by the graph builder.
	SourceGroups map[string]string
}

// NodeHandle is the transient AST reference described in the data model:
// carried only for the duration of graph construction, never persisted.
type NodeHandle struct {
	Node     ASTNode
	Source   []byte
	Language Language
}

// ASTNode is the minimal surface internal/refgraph needs from a parsed
// node, implemented by a thin wrapper around *sitter.Node (and by a
// go/ast-backed adapter for the Go path, astnode_go.go). Kept as an interface so refgraph does not
// need to import tree-sitter directly.
type ASTNode interface {
	Kind() string
	StartLine() int
	EndLine() int
	ChildByFieldName(name string) ASTNode
	NamedChildren() []ASTNode
	Parent() ASTNode
	PrevNamedSibling() ASTNode
	// FieldName is the field name this node is held under in its
	// parent's child list ("name", "left", "alias", ...), or "" for an
	// unnamed/positional child. Used by internal/refgraph to recognize
	// binding positions (parameters, assignment targets, aliases)
	// without needing a language-specific grammar import.
	FieldName() string
	Text(source []byte) string
}
