package refgraph

import "strings"

// symbolEntry is one (chunk, owner) pair indexed under a definition name.
type symbolEntry struct {
	chunkID string
	owner   string
}

// symbolIndex maps (language, name) to every chunk that defines it.
type symbolIndex map[string]map[string][]symbolEntry

func (idx symbolIndex) add(language, name, chunkID, owner string) {
	byLang, ok := idx[language]
	if !ok {
		byLang = map[string][]symbolEntry{}
		idx[language] = byLang
	}
	byLang[name] = append(byLang[name], symbolEntry{chunkID: chunkID, owner: owner})
}

func (idx symbolIndex) lookup(language, name string) []symbolEntry {
	byLang, ok := idx[language]
	if !ok {
		return nil
	}
	return byLang[name]
}

var identifierKinds = set("identifier", "type_identifier", "field_identifier",
	"property_identifier", "constant")

// definitionName implements the symbol index's definition-name rule: the
// node's name field when present, else the first identifier descendant.
func definitionName(node ASTNode) (ASTNode, string) {
	if name := node.ChildByFieldName("name"); name != nil {
		return name, ""
	}
	for _, child := range node.NamedChildren() {
		if _, ok := identifierKinds[child.Kind()]; ok {
			return child, ""
		}
		if n, _ := definitionName(child); n != nil {
			return n, ""
		}
	}
	return nil, ""
}

// ownerName walks a chunk's AST ancestors, collecting every owner-kind
// ancestor's own name and joining them outer-to-inner with '.' (spec
// §4.6's Python rule, generalized to every language using the default
// resolver too).
func ownerName(node ASTNode, kinds langKinds, source []byte) string {
	var parts []string
	cur := node.Parent()
	for cur != nil {
		if _, ok := kinds.ownerKinds[cur.Kind()]; ok {
			if nameNode := cur.ChildByFieldName("name"); nameNode != nil {
				parts = append(parts, nameNode.Text(source))
			}
		}
		cur = cur.Parent()
	}
	// parts was collected innermost-ancestor-first; reverse to outer-to-inner.
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}
