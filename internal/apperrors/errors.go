package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrComputation indicates that a derived value (availability, costs) could
// not be computed from the supplied inputs, e.g. unparsable dates.
var ErrComputation = errors.New("computation error")
