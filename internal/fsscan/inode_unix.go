//go:build unix

package fsscan

import (
	"os"
	"syscall"
)

// inodeOf extracts the platform inode number when the underlying
// os.FileInfo exposes a *syscall.Stat_t, nil otherwise (spec §3:
// "inode:int? (nullable on filesystems without stable inodes)").
func inodeOf(info os.FileInfo) *int64 {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return nil
	}
	ino := int64(stat.Ino)
	return &ino
}
