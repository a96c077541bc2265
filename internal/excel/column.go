package excel

import "fmt"

// InvalidColumnLabelError is returned when a column label is empty or
// contains anything other than letters A-Z.
type InvalidColumnLabelError struct {
	Label string
}

func (e *InvalidColumnLabelError) Error() string {
	return fmt.Sprintf("invalid column label %q", e.Label)
}

// ColumnToIndex converts a spreadsheet column label to a zero-based column
// index. The label is read as a base-26 number with digit values A=1..Z=26
// (case-insensitive, no zero digit): "A" -> 0, "Z" -> 25, "AA" -> 26.
func ColumnToIndex(label string) (int, error) {
	if label == "" {
		return 0, &InvalidColumnLabelError{Label: label}
	}

	value := 0
	for i := 0; i < len(label); i++ {
		ch := label[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
			value = value*26 + int(ch-'A') + 1
		case ch >= 'a' && ch <= 'z':
			value = value*26 + int(ch-'a') + 1
		default:
			return 0, &InvalidColumnLabelError{Label: label}
		}
	}
	return value - 1, nil
}
