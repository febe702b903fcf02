// Package resolve turns a link into a media record through the external metadata API.
package resolve

import (
	"fmt"

	"github.com/clipdrop/clipdrop/media"
)

// Kind classifies why an attempt failed.
type Kind int

const (
	// Transport covers connection failures and unreadable or malformed bodies.
	Transport Kind = iota
	// Timeout means the attempt exceeded its deadline and was cancelled.
	Timeout
	// ApiRejected means a well-formed response reported failure.
	ApiRejected
)

func (k Kind) String() string {
	switch k {
	case Transport:
		return "transport"
	case Timeout:
		return "timeout"
	case ApiRejected:
		return "api rejected"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a failed attempt, or, when returned from Resolve, the terminal failure of a link.
type Error struct {
	Kind     Kind
	Link     media.Link
	Attempts int
	// Message is the API's own explanation for ApiRejected.
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}

	if e.Attempts > 0 {
		return fmt.Sprintf("resolve %s: %s after %d attempts: %s", e.Link, e.Kind, e.Attempts, msg)
	}
	return fmt.Sprintf("resolve %s: %s: %s", e.Link, e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}
