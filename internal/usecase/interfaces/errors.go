package interfaces

import "errors"

// ErrConflict is returned when a conditional write loses: the record's state
// changed between the caller's read and the write. Usecases translate it to
// the operation-specific sentinel.
var ErrConflict = errors.New("conditional write failed: state changed since read")
