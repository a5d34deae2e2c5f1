package stitch

import "fmt"

// FetchError reports a non-success response while retrieving a caption
// window. It aborts the whole reassembly; nothing is retried.
type FetchError struct {
	URL    string
	Window int
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch caption window %d from %s: %v", e.Window, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a caption payload that does not conform to the SRT
// grammar, identifying the window that carried it.
type ParseError struct {
	Window int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse caption window %d: %v", e.Window, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
