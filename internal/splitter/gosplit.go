package splitter

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
)

// splitGo parses a Go source file with go/ast and emits one chunk per
// function/method declaration and per top-level type declaration,
// matching the spec §6 closed set for Go: {function_declaration,
// method_declaration, type_declaration}. Grounded on the teacher's
// go/ast-based parser, which never routed Go through tree-sitter either.
func (s *Splitter) splitGo(relPath string, source []byte) (*Result, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, relPath, source, parser.ParseComments)
	if err != nil {
		return s.splitFallback(relPath, source, LanguageGo), nil
	}

	norm := normalizePath(relPath)
	result := &Result{Nodes: map[string]NodeHandle{}, SourceGroups: map[string]string{}}

	emit := func(nodeType, identifier string, start, end token.Pos, doc *ast.CommentGroup, astNode ASTNode) {
		startLine := fset.Position(start).Line
		endLine := fset.Position(end).Line
		content := strings.TrimSpace(sliceByPos(source, fset, start, end))
		if content == "" {
			return
		}

		docText, hasDoc := "", false
		if s.cfg.ExtractDocs && doc != nil {
			docText = normalizeDocComment(strings.Split(strings.TrimRight(doc.Text(), "\n"), "\n"))
			hasDoc = docText != ""
		}

		unitID := computeChunkID(norm, nodeType, "", identifier)
		subs := refine(unit{content: content, startLine: startLine, endLine: endLine, doc: docText, hasDoc: hasDoc}, s.cfg)
		for i, su := range subs {
			id := unitID
			if len(subs) > 1 {
				id = computeChunkID(norm, nodeType, "", su.content)
			}
			result.Chunks = append(result.Chunks, CodeChunk{
				ID:        id,
				Content:   su.content,
				StartLine: su.startLine,
				EndLine:   su.endLine,
				Language:  LanguageGo,
				FilePath:  norm,
				Doc:       su.doc,
				HasDoc:    su.hasDoc,
			})
			result.SourceGroups[id] = unitID
			if i == 0 && astNode != nil {
				result.Nodes[id] = NodeHandle{Node: astNode, Source: source, Language: LanguageGo}
			}
		}
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			nodeType := "function_declaration"
			if d.Recv != nil {
				nodeType = "method_declaration"
			}
			emit(nodeType, d.Name.Name, d.Pos(), d.End(), d.Doc, wrapGoFunc(fset, d))
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := ts.Doc
				if doc == nil {
					doc = d.Doc
				}
				emit("type_declaration", ts.Name.Name, ts.Pos(), ts.End(), doc, wrapGoType(fset, ts))
			}
		}
	}

	if len(result.Chunks) == 0 {
		return s.wholeFileChunk(relPath, source, LanguageGo), nil
	}
	return result, nil
}

func sliceByPos(source []byte, fset *token.FileSet, start, end token.Pos) string {
	s := fset.Position(start).Offset
	e := fset.Position(end).Offset
	if s < 0 || e > len(source) || s > e {
		return ""
	}
	return string(source[s:e])
}
