package excel

import (
	"errors"
	"testing"
)

func TestColumnToIndex_Valid(t *testing.T) {
	testCases := []struct {
		label string
		want  int
	}{
		{"A", 0},
		{"B", 1},
		{"Z", 25},
		{"AA", 26},
		{"AZ", 51},
		{"BA", 52},
		{"ZZ", 701},
		{"AAA", 702},
	}

	for _, tc := range testCases {
		got, err := ColumnToIndex(tc.label)
		if err != nil {
			t.Errorf("ColumnToIndex(%q) error = %v, want nil", tc.label, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ColumnToIndex(%q) = %d, want %d", tc.label, got, tc.want)
		}
	}
}

func TestColumnToIndex_CaseInsensitive(t *testing.T) {
	testCases := []struct {
		label string
		want  int
	}{
		{"a", 0},
		{"z", 25},
		{"aa", 26},
		{"Az", 51},
	}

	for _, tc := range testCases {
		got, err := ColumnToIndex(tc.label)
		if err != nil {
			t.Errorf("ColumnToIndex(%q) error = %v, want nil", tc.label, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ColumnToIndex(%q) = %d, want %d", tc.label, got, tc.want)
		}
	}
}

func TestColumnToIndex_Invalid(t *testing.T) {
	testCases := []string{
		"",
		"A1",
		"1",
		"A B",
		"가",
		"A-",
	}

	for _, label := range testCases {
		_, err := ColumnToIndex(label)
		if err == nil {
			t.Errorf("ColumnToIndex(%q) error = nil, want error", label)
			continue
		}
		var colErr *InvalidColumnLabelError
		if !errors.As(err, &colErr) {
			t.Errorf("ColumnToIndex(%q) error type = %T, want *InvalidColumnLabelError", label, err)
		}
	}
}
