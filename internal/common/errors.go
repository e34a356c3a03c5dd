// Package common holds small helpers and sentinel errors shared by the
// linkdash client layers. Callers should use errors.Is to match them.
package common

import "errors"

// ErrIncompleteSession means a token or identity id is missing.
var ErrIncompleteSession = errors.New("incomplete session")
