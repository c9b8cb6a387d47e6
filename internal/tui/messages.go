package tui

// toastExpiredMsg dismisses the toast that scheduled it. The sequence
// number guards against a stale tick dismissing a newer toast.
type toastExpiredMsg struct {
	seq int
}
