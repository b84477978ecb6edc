package cache

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Key builds a stable cache key from the semantic arguments of a call.
// Callers pass arguments in a fixed order so equivalent queries collide and
// different queries never do: nil pointers normalize to "-", strings are
// quoted (so an embedded separator cannot forge another key), and pointers
// are keyed by value, not identity.
func Key(parts ...any) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(formatPart(p))
	}
	return b.String()
}

func formatPart(p any) string {
	switch v := p.(type) {
	case nil:
		return "-"
	case string:
		return strconv.Quote(v)
	case *string:
		if v == nil {
			return "-"
		}
		return strconv.Quote(*v)
	case int:
		return strconv.Itoa(v)
	case *int:
		if v == nil {
			return "-"
		}
		return strconv.Itoa(*v)
	case bool:
		return strconv.FormatBool(v)
	case *bool:
		if v == nil {
			return "-"
		}
		return strconv.FormatBool(*v)
	case uuid.UUID:
		return v.String()
	case *uuid.UUID:
		if v == nil {
			return "-"
		}
		return v.String()
	case fmt.Stringer:
		return strconv.Quote(v.String())
	default:
		return fmt.Sprintf("%v", v)
	}
}
