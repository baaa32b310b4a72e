//go:build windows

package webgpu

// IsAvailable checks if WebGPU is available on the current system.
// It initializes a throwaway backend and releases it immediately.
func IsAvailable() bool {
	b, err := New()
	if err != nil {
		return false
	}
	b.Release()
	return true
}
