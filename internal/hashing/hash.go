// Package hashing computes the 128-bit content digest used by the
// change detector (spec §4.3). The hash family is a contract only in
// that it is 128 bits and content-exact; spec §4.3 explicitly permits
// substituting any such family, so this module uses XXH3-128 via
// github.com/zeebo/xxh3, a pure-Go non-cryptographic hash already
// present in the example corpus's dependency graph.
package hashing

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/zeebo/xxh3"
)

// streamChunkSize is the read buffer size for FileHash (spec §4.3: "by
// streaming the file in 64 KiB chunks").
const streamChunkSize = 64 * 1024

// FileHash streams path in 64 KiB chunks through an XXH3-128 hasher and
// returns the lowercase hex digest.
func FileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := xxh3.New()
	buf := make([]byte, streamChunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", err
	}

	sum := h.Sum128()
	return hex.EncodeToString(encode128(sum.Hi, sum.Lo)), nil
}

// BytesHash hashes an in-memory buffer the same way FileHash hashes a
// stream, for callers (e.g. tests, watch-triggered re-hash of content
// already read into memory) that already hold the bytes.
func BytesHash(data []byte) string {
	sum := xxh3.Hash128(data)
	return hex.EncodeToString(encode128(sum.Hi, sum.Lo))
}

func encode128(hi, lo uint64) []byte {
	b := make([]byte, 16)
	for i := 0; i < 8; i++ {
		b[i] = byte(hi >> (8 * (7 - i)))
		b[8+i] = byte(lo >> (8 * (7 - i)))
	}
	return b
}

// PathHash64 returns XXH3-64 over an absolute path's UTF-8 bytes as a
// uint64 (PathHash64Hex renders it as hex) — the 64-bit codebase identifier used for
// both collection naming (first 8 hex chars, spec §6) and snapshot file
// naming (first 16 hex chars, spec §6).
func PathHash64(absPath string) uint64 {
	return xxh3.HashString(absPath)
}

// PathHash64Hex renders PathHash64 as 16 lowercase hex characters.
func PathHash64Hex(absPath string) string {
	v := PathHash64(absPath)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * (7 - i)))
	}
	return hex.EncodeToString(b)
}
