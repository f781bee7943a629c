package ledger

import (
	"strconv"
	"strings"
)

// nonNumericSort places items with unparseable sequence numbers after every
// real number in the renumbering sort.
const nonNumericSort = 1_000_000_000

// itemNumberValue parses a string-encoded sequence number. Non-numeric
// values are tolerated: they are skipped when deriving the next number and
// sort last during renumbering.
func itemNumberValue(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}

	return n, true
}

func itemNumberSortValue(s string) int {
	n, ok := itemNumberValue(s)
	if !ok {
		return nonNumericSort
	}

	return n
}

// ParseAmount parses a non-negative numeric input. Callers send quantities
// as JSON numbers or as strings, sometimes with comma thousands separators
// ("1,234.5"); both forms are accepted. Negative or non-numeric input fails
// with a validation error before any write.
func ParseAmount(field string, v any) (float64, error) {
	var (
		f   float64
		err error
	)

	switch n := v.(type) {
	case nil:
		return 0, Errorf(ReasonValidation, "missing parameter: %s", field)
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(n), ",", "")
		if s == "" {
			return 0, Errorf(ReasonValidation, "missing parameter: %s", field)
		}

		f, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, Errorf(ReasonValidation, "%s must be numeric", field)
		}
	default:
		return 0, Errorf(ReasonValidation, "%s must be numeric", field)
	}

	if f < 0 {
		return 0, Errorf(ReasonValidation, "%s must be non-negative", field)
	}

	return f, nil
}
