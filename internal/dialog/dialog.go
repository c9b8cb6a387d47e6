// Package dialog defines the confirmation and notification capability
// surface. Model code describes the prompt or toast it needs as a value;
// the TUI decides how to present it. Cancelling a confirmation aborts the
// pending operation with no side effects.
package dialog

// Kind classifies a dialog or toast for presentation.
type Kind string

const (
	Info    Kind = "info"
	Success Kind = "success"
	Warning Kind = "warning"
	Danger  Kind = "danger"
)

// Confirm describes a pending user confirmation. The operation it guards
// runs only after the user accepts.
type Confirm struct {
	Title       string
	Text        string
	Kind        Kind
	AcceptLabel string
	CancelLabel string
}

// Toast describes a transient, auto-dismissing notification.
type Toast struct {
	Title string
	Kind  Kind
}

// NewToast is a convenience constructor.
func NewToast(kind Kind, title string) *Toast {
	return &Toast{Title: title, Kind: kind}
}
