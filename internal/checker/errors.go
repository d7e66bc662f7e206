package checker

import "fmt"

// Kind categorizes the failures the view can show
type Kind int

const (
	// KindUnknown represents an unclassified error.
	KindUnknown Kind = iota
	// KindClipboard means the clipboard could not be read.
	KindClipboard
	// KindRequest covers transport failures, non-2xx answers and undecodable bodies.
	KindRequest
)

// User-facing failure messages. The cause never reaches the user.
const (
	MsgClipboardFailed = "Failed to read clipboard."
	MsgRequestFailed   = "Failed to check the URL. Please try again."
)

func (k Kind) String() string {
	switch k {
	case KindClipboard:
		return "clipboard"
	case KindRequest:
		return "request"
	default:
		return "unknown"
	}
}

// Error carries a failure kind, its user message and the original cause
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func clipboardError(cause error) *Error {
	return &Error{Kind: KindClipboard, Message: MsgClipboardFailed, Cause: cause}
}

func requestError(cause error) *Error {
	return &Error{Kind: KindRequest, Message: MsgRequestFailed, Cause: cause}
}
