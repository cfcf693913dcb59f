//go:build windows

package sysdisk

import "golang.org/x/sys/windows"

// availBytes returns available space on Windows using GetDiskFreeSpaceEx.
func availBytes(path string) (uint64, bool) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, false
	}
	var freeToCaller, total, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(p, &freeToCaller, &total, &totalFree); err != nil {
		return 0, false
	}
	return freeToCaller, true
}
