//go:build !windows

package mainwindow

// Per-window alpha needs compositor cooperation; the alpha channel of the
// background rectangle already provides the translucent look elsewhere.
func (widgetWindow *Window) applyNativeOpacity(alpha uint8) {}
