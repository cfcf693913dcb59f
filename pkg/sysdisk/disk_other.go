//go:build !linux && !darwin && !windows && !freebsd && !dragonfly

package sysdisk

// availBytes returns a fallback for unsupported platforms.
// Returns false to indicate the value is not reliable.
func availBytes(path string) (uint64, bool) {
	return 0, false
}
