package compiler

import (
	"strings"

	"github.com/google/uuid"
)

// newNodeID generates a fresh TCL-safe variable identifier. Only uniqueness
// matters, within one compilation and across independent invocations in the
// same host session; the N prefix keeps the name a valid TCL variable.
func newNodeID() string {
	return "N" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
