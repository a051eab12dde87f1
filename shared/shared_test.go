package shared_test

import (
	"reflect"
	"testing"
	"time"

	"atithi/shared"
	"atithi/shared/constant"
	"atithi/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "valid true string", input: "true", expected: boolPtr(true)},
		{name: "valid false string", input: "false", expected: boolPtr(false)},
		{name: "valid 1 string", input: "1", expected: boolPtr(true)},
		{name: "valid 0 string", input: "0", expected: boolPtr(false)},
		{name: "valid T string", input: "T", expected: boolPtr(true)},
		{name: "valid F string", input: "F", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "invalid", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "negative limit returns 1", total: 100, limit: -5, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
		{name: "limit greater than total", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestFormatIDSurvivesLargeValues(t *testing.T) {
	// Values above 2^53 lose precision as JSON numbers; the string form must not.
	id := int64(9007199254740993)

	formatted := shared.FormatID(id)
	if formatted != "9007199254740993" {
		t.Errorf("expected 9007199254740993, got %s", formatted)
	}

	parsed, err := shared.ParseID(formatted)
	if err != nil {
		t.Fatalf("ParseID failed: %v", err)
	}

	if parsed != id {
		t.Errorf("round trip changed the id: %d != %d", parsed, id)
	}
}

func TestParseIDRejectsGarbage(t *testing.T) {
	if _, err := shared.ParseID("not-a-number"); err == nil {
		t.Error("expected an error for a non-numeric id")
	}

	if _, err := shared.ParseID("12.5"); err == nil {
		t.Error("expected an error for a fractional id")
	}
}

func TestTransformFields(t *testing.T) {
	type TestStruct struct {
		ID         int64  `db:"id"`
		Name       string `db:"name"`
		Email      string `db:"email"`
		EmptyField string `db:"empty_field"`
		NoDBTag    string
	}

	tests := []struct {
		name     string
		data     interface{}
		expected map[string]any
	}{
		{
			name: "struct with populated fields",
			data: TestStruct{
				ID:      1,
				Name:    "John Doe",
				Email:   "john@example.com",
				NoDBTag: "ignored",
			},
			expected: map[string]any{
				"id":    int64(1),
				"name":  "John Doe",
				"email": "john@example.com",
			},
		},
		{
			name:     "struct with all zero values",
			data:     TestStruct{},
			expected: map[string]any{},
		},
		{
			name:     "struct with partial fields",
			data:     TestStruct{Name: "Jane Doe"},
			expected: map[string]any{"name": "Jane Doe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data)

			if result[constant.FieldUpdatedAt] == nil {
				t.Error("expected updated_at to be set")
			}

			if _, ok := result[constant.FieldUpdatedAt].(time.Time); !ok {
				t.Error("expected updated_at to be a time.Time")
			}

			for key, expectedValue := range tt.expected {
				if actualValue, exists := result[key]; !exists {
					t.Errorf("expected field %s to exist", key)
				} else if !reflect.DeepEqual(actualValue, expectedValue) {
					t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
				}
			}

			for key := range result {
				if key == constant.FieldUpdatedAt {
					continue
				}
				if _, expected := tt.expected[key]; !expected {
					t.Errorf("unexpected field %s in result", key)
				}
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID(int64(123), "booking_id", "bookings")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "booking_id",
				Value:    int64(123),
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
		},
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
