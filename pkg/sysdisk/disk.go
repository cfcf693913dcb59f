// Package sysdisk provides cross-platform free-disk-space detection.
//
// This package detects the space available to the process on the filesystem
// holding a given path, using platform-specific methods, and reports when
// no reliable value could be obtained.
package sysdisk

// Result holds the result of free-space detection.
type Result struct {
	// AvailBytes is the space available on the filesystem, in bytes.
	AvailBytes uint64

	// Reliable indicates whether the value was obtained from a
	// platform-specific method (true) or is a zero fallback (false).
	Reliable bool
}

// Avail returns the space available on the filesystem holding path.
// If platform-specific detection fails or is unsupported, it returns
// zero with Reliable=false.
func Avail(path string) Result {
	bytes, ok := availBytes(path)
	if !ok {
		return Result{AvailBytes: 0, Reliable: false}
	}
	return Result{AvailBytes: bytes, Reliable: true}
}
