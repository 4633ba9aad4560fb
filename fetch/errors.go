package fetch

import "errors"

// ErrDenied is returned when robots directives disallow the URL, or when the
// robots.txt itself could not be retrieved (fail-closed on transport error).
var ErrDenied = errors.New("fetch: blocked by robots directives")

// ErrFetchFailed is returned when the target page itself cannot be
// retrieved — transport failure or non-2xx status.
var ErrFetchFailed = errors.New("fetch: failed to fetch content")
