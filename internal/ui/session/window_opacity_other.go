//go:build !windows

package session

// The compositor honours the background alpha directly outside Windows.
func (session *Window) applyNativeOpacity(alpha uint8) {}
