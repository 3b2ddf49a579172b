package frame

import "fmt"

// LookupError reports a must-exist lookup that found no live frame.
// Advisory lookups never return it; they report absence instead.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no live frame named %q", e.Name)
}
