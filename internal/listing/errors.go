package listing

import "fmt"

// FetchError is returned when a listing page cannot be retrieved.
type FetchError struct {
	Folder string
	URL    string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Folder == "" {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch folder %q (%s): %v", e.Folder, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError describes an anchor that matched a track extension but from
// which no track name could be derived.
type ParseError struct {
	Href   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s", e.Href, e.Reason)
}
