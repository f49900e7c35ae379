package serialize

import "errors"

// ErrMalformed is returned when an import source cannot be parsed into a
// well-formed CMDP description (a bad line in the PRISM-like format, an
// unparsable JSON document, a distribution fraction that isn't "n/d", ...).
var ErrMalformed = errors.New("serialize: malformed input")
