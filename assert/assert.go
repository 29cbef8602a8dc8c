// Package assert provides checks for internal invariants. A failed check is a
// bug in this module, never a caller mistake, so it panics.
//
// Building with the assertions_disabled tag compiles the checks away.
package assert

import "fmt"

// failure renders args as a panic message. A leading string is a format for
// the rest.
func failure(args []any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}
