package shared

import (
	"staywise/shared/dto"
	"strings"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the prefix and every non-empty part with ":".
func BuildCacheKey(prefix string, parts ...string) string {
	key := []string{prefix}

	for _, part := range parts {
		if part == "" {
			continue
		}

		key = append(key, part)
	}

	return strings.Join(key, cacheKeySeparator)
}

func FilterByField(field string, value any, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []dto.Condition{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByValues matches rows whose field is one of values. No values matches no rows.
func FilterByValues[V any](field string, values []V, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []dto.Condition{
			dto.Filter{
				Field:    field,
				Value:    values,
				Operator: dto.FilterOperatorIn,
				Table:    table,
			},
		},
	}
}
