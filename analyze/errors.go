package analyze

import "errors"

// ErrMissingInput is returned when a request carries neither a URL nor
// inline HTML.
var ErrMissingInput = errors.New("analyze: either url or html is required")
