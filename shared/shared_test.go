package shared_test

import (
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"testing"
	"time"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "valid TRUE string",
			input:    "TRUE",
			expected: boolPtr(true),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
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

func TestConvertStringToInt(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    int
		expectError bool
	}{
		{
			name:     "valid positive number",
			input:    "42",
			expected: 42,
		},
		{
			name:     "valid negative number",
			input:    "-3",
			expected: -3,
		},
		{
			name:     "zero",
			input:    "0",
			expected: 0,
		},
		{
			name:        "empty string returns error",
			input:       "",
			expectError: true,
		},
		{
			name:        "non numeric string returns error",
			input:       "fourth floor",
			expectError: true,
		},
		{
			name:        "float string returns error",
			input:       "3.5",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := shared.ConvertStringToInt(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
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
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "rounds up partial page",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "single page",
			total:    3,
			limit:    10,
			expected: 1,
		},
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

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Number   string `db:"number"`
		Floor    int    `db:"floor"`
		Capacity int    `db:"capacity"`
		Internal string
	}

	data := updateRequest{
		Number:   "101A",
		Capacity: 2,
		Internal: "ignored",
	}

	fields := shared.TransformFields(data, "reception@frontdesk.md")

	if fields["number"] != "101A" {
		t.Errorf("expected number to be 101A, got %v", fields["number"])
	}
	if fields["capacity"] != 2 {
		t.Errorf("expected capacity to be 2, got %v", fields["capacity"])
	}
	if _, ok := fields["floor"]; ok {
		t.Error("expected zero-valued floor to be skipped")
	}
	if fields[constant.FieldModifiedBy] != "reception@frontdesk.md" {
		t.Errorf("expected modified_by to be set, got %v", fields[constant.FieldModifiedBy])
	}
	if _, ok := fields[constant.FieldModifiedAt].(time.Time); !ok {
		t.Errorf("expected modified_at to be a time.Time, got %T", fields[constant.FieldModifiedAt])
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("room-1", "id", "rooms")

	if len(group.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(group.Filters))
	}

	filter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("expected dto.Filter, got %T", group.Filters[0])
	}

	if filter.Field != "id" || filter.Value != "room-1" || filter.Table != "rooms" {
		t.Errorf("unexpected filter: %+v", filter)
	}
	if filter.Operator != dto.FilterOperatorEq {
		t.Errorf("expected eq operator, got %s", filter.Operator)
	}
}

func TestBuildCacheKey(t *testing.T) {
	key := shared.BuildCacheKey("room", "room-1")

	if key != "room:room-1" {
		t.Errorf("expected room:room-1, got %s", key)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "number"}
	filter := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "floor", Value: "3", Operator: dto.FilterOperatorEq},
		},
	}

	first := shared.BuildCacheKeyWithQuery("room", params, filter)
	second := shared.BuildCacheKeyWithQuery("room", params, filter)

	if first != second {
		t.Errorf("expected deterministic keys, got %s and %s", first, second)
	}

	params.Page = 2
	third := shared.BuildCacheKeyWithQuery("room", params, filter)

	if first == third {
		t.Errorf("expected different keys for different pages, got %s twice", first)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
