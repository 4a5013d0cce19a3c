//go:build !linux

package metrics

// DiskKind is only detected on Linux.
func DiskKind(device string) string {
	return DiskKindUnknown
}
