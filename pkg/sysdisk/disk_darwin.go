//go:build darwin

package sysdisk

import "golang.org/x/sys/unix"

// availBytes returns available space on macOS using statfs.
func availBytes(path string) (uint64, bool) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, false
	}
	return st.Bavail * uint64(st.Bsize), true
}
