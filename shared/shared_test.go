package shared_test

import (
	"staywise/shared"
	"staywise/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "notification:feed",
			expected: "notification:feed",
		},
		{
			name:     "prefix with parts",
			prefix:   "booking:dashboard:renter",
			parts:    []string{"user_1"},
			expected: "booking:dashboard:renter:user_1",
		},
		{
			name:     "empty parts are skipped",
			prefix:   "limiter",
			parts:    []string{"127.0.0.1", "", "curl"},
			expected: "limiter:127.0.0.1:curl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.prefix, tt.parts...))
		})
	}
}

func TestFilterByField(t *testing.T) {
	result := shared.FilterByField("owner_id", "owner_1", "listings")

	expected := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []dto.Condition{
			dto.Filter{
				Field:    "owner_id",
				Value:    "owner_1",
				Operator: dto.FilterOperatorEq,
				Table:    "listings",
			},
		},
	}

	assert.Equal(t, expected, result)

	where, args := result.GetWhereClause()
	assert.Equal(t, "(listings.owner_id = :owner_id)", where)
	assert.Equal(t, map[string]any{"owner_id": "owner_1"}, args)
}

func TestFilterByValues(t *testing.T) {
	where, args := shared.FilterByValues("booking_id", []string{"b_1", "b_2"}, "payments").GetWhereClause()

	assert.Equal(t, "(payments.booking_id IN (:booking_id_0, :booking_id_1))", where)
	assert.Equal(t, map[string]any{"booking_id_0": "b_1", "booking_id_1": "b_2"}, args)

	where, args = shared.FilterByValues("booking_id", []string{}, "payments").GetWhereClause()

	assert.Equal(t, "(FALSE)", where)
	assert.Empty(t, args)
}
