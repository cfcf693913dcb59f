//go:build freebsd || dragonfly

package sysdisk

import "golang.org/x/sys/unix"

// availBytes returns available space on FreeBSD and DragonFly using statfs.
// Bavail is signed on these platforms and can go negative when the
// reserved-blocks quota is exceeded.
func availBytes(path string) (uint64, bool) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, false
	}
	if st.Bavail < 0 {
		return 0, true
	}
	return uint64(st.Bavail) * uint64(st.Bsize), true
}
