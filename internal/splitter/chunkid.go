package splitter

import (
	"path"
	"strings"

	"github.com/bojanb98/code-context/internal/hashing"
)

// unitSep is the 0x1F (unit separator) control byte the id formula joins
// its fields with.
const unitSep = "\x1f"

// computeChunkID implements the chunk-id assignment rule: a 128-bit
// XXH3 digest of the normalized path, node type, enclosing parent id (or
// empty), and identifier, joined by 0x1F.
func computeChunkID(normalizedPath, nodeType, parentID, identifier string) string {
	key := normalizedPath + unitSep + nodeType + unitSep + parentID + unitSep + identifier
	return hashing.BytesHash([]byte(key))
}

// normalizePath converts a relative file path to the form the id formula
// hashes: forward slashes, no leading "./".
func normalizePath(relPath string) string {
	p := path.Clean(filepathToSlash(relPath))
	return strings.TrimPrefix(p, "./")
}

func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
