// Package assert provides the precondition checks ksl relies on instead
// of returning errors for programmer mistakes. The checks are always on;
// no build tag disables them.
package assert

import "fmt"

// That panics with a formatted message if condition is false.
func That(condition bool, msg string, v ...any) {
	if !condition {
		panic(fmt.Sprintf("assertion failed: "+msg, v...))
	}
}
