package dto_test

import (
	"testing"
	"time"

	"courtside/shared/dto"
)

func TestFilter_GetWhereClause_Operators(t *testing.T) {
	tests := []struct {
		name       string
		filter     dto.Filter
		wantClause string
		wantArg    string
	}{
		{
			name: "eq",
			filter: dto.Filter{
				Field:    "status",
				Value:    "confirmed",
				Operator: dto.FilterOperatorEq,
				Table:    "reservations",
			},
			wantClause: "reservations.status = :status",
			wantArg:    "status",
		},
		{
			name: "less is strict",
			filter: dto.Filter{
				ArgName:  "overlap_end",
				Field:    "start_time",
				Value:    time.Date(2026, time.January, 5, 18, 0, 0, 0, time.UTC),
				Operator: dto.FilterOperatorLess,
				Table:    "reservations",
			},
			wantClause: "reservations.start_time < :overlap_end",
			wantArg:    "overlap_end",
		},
		{
			name: "greater is strict",
			filter: dto.Filter{
				ArgName:  "overlap_start",
				Field:    "end_time",
				Value:    time.Date(2026, time.January, 5, 17, 0, 0, 0, time.UTC),
				Operator: dto.FilterOperatorGreater,
				Table:    "reservations",
			},
			wantClause: "reservations.end_time > :overlap_start",
			wantArg:    "overlap_start",
		},
		{
			name: "less_eq is inclusive",
			filter: dto.Filter{
				Field:    "base_price",
				Value:    15,
				Operator: dto.FilterOperatorLessEq,
				Table:    "courts",
			},
			wantClause: "courts.base_price <= :base_price",
			wantArg:    "base_price",
		},
		{
			name: "greater_eq is inclusive",
			filter: dto.Filter{
				Field:    "base_price",
				Value:    10,
				Operator: dto.FilterOperatorGreaterEq,
				Table:    "courts",
			},
			wantClause: "courts.base_price >= :base_price",
			wantArg:    "base_price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			if clause != tt.wantClause {
				t.Errorf("expected clause to be %q, got %q", tt.wantClause, clause)
			}

			if _, ok := args[tt.wantArg]; !ok {
				t.Errorf("expected args to contain %q, got %v", tt.wantArg, args)
			}
		})
	}
}

func TestFilterGroup_GetWhereClause_JoinsWithOperator(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "court_id",
				Value:    "test-court-id",
				Operator: dto.FilterOperatorEq,
				Table:    "reservations",
			},
			dto.Filter{
				ArgName:  "overlap_end",
				Field:    "start_time",
				Value:    time.Date(2026, time.January, 5, 19, 0, 0, 0, time.UTC),
				Operator: dto.FilterOperatorLess,
				Table:    "reservations",
			},
		},
	}

	clause, args := group.GetWhereClause()

	want := "(reservations.court_id = :court_id AND reservations.start_time < :overlap_end)"
	if clause != want {
		t.Errorf("expected clause to be %q, got %q", want, clause)
	}

	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}
