package intake

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ValidationError lists the invalid fields of one step, keyed by field name
// with the failed rule as value.
type ValidationError struct {
	Step   Step
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+e.Fields[k])
	}
	return fmt.Sprintf("invalid %s step: %s", e.Step, strings.Join(parts, ", "))
}
