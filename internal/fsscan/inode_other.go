//go:build !unix

package fsscan

import "os"

// inodeOf has no stable inode source on non-unix filesystems.
func inodeOf(info os.FileInfo) *int64 {
	return nil
}
