package splitter

import (
	"path/filepath"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	php "github.com/tree-sitter/tree-sitter-php/bindings/go"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"
	rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// extensionLanguages maps a lowercase file extension (without the dot) to
// its language tag. Extensions absent from this table fall back to the
// line-bounded text splitter.
var extensionLanguages = map[string]Language{
	"py":    LanguagePython,
	"ts":    LanguageTypeScript,
	"tsx":   LanguageTSX,
	"js":    LanguageJavaScript,
	"jsx":   LanguageJavaScript,
	"java":  LanguageJava,
	"c":     LanguageC,
	"h":     LanguageC,
	"cpp":   LanguageCPP,
	"cc":    LanguageCPP,
	"hpp":   LanguageCPP,
	"php":   LanguagePHP,
	"rb":    LanguageRuby,
	"rs":    LanguageRust,
	"go":    LanguageGo,
	"cs":    LanguageCSharp,
	"kt":    LanguageKotlin,
	"scala": LanguageScala,
	"swift": LanguageText, // no grammar in the pack; line-bounded only
}

// DetectLanguage maps a relative file path to its language tag by
// extension, defaulting to LanguageText when unrecognized.
func DetectLanguage(relPath string) Language {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(relPath)), ".")
	if lang, ok := extensionLanguages[ext]; ok {
		return lang
	}
	return LanguageText
}

// sitterGrammars holds the languages with a tree-sitter grammar available
// in this module's dependency set. Go is parsed via go/ast instead (see
// gosplit.go); C#, Kotlin, and Scala have no grammar in the pack and fall
// back to the line-bounded splitter.
var sitterGrammars = map[Language]func() *sitter.Language{
	LanguagePython:     func() *sitter.Language { return sitter.NewLanguage(python.Language()) },
	LanguageTypeScript: func() *sitter.Language { return sitter.NewLanguage(typescript.LanguageTypescript()) },
	LanguageTSX:        func() *sitter.Language { return sitter.NewLanguage(typescript.LanguageTSX()) },
	LanguageJavaScript: func() *sitter.Language { return sitter.NewLanguage(javascript.Language()) },
	LanguageJava:       func() *sitter.Language { return sitter.NewLanguage(java.Language()) },
	LanguageC:          func() *sitter.Language { return sitter.NewLanguage(c.Language()) },
	LanguageCPP:        func() *sitter.Language { return sitter.NewLanguage(cpp.Language()) },
	LanguagePHP:        func() *sitter.Language { return sitter.NewLanguage(php.LanguagePHP()) },
	LanguageRuby:       func() *sitter.Language { return sitter.NewLanguage(ruby.Language()) },
	LanguageRust:       func() *sitter.Language { return sitter.NewLanguage(rust.Language()) },
}

func grammarFor(lang Language) (*sitter.Language, bool) {
	ctor, ok := sitterGrammars[lang]
	if !ok {
		return nil, false
	}
	return ctor(), true
}
