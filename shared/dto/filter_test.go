package dto_test

import (
	"mallbook/shared/dto"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "pending", Table: "bookings"},
			wantWhere: "bookings.status = :status",
			wantArgs:  map[string]any{"status": "pending"},
		},
		{
			name:      "arg name overrides field",
			filter:    dto.Filter{ArgName: "guard_status", Field: "status", Operator: dto.FilterOperatorEq, Value: "pending"},
			wantWhere: "status = :guard_status",
			wantArgs:  map[string]any{"guard_status": "pending"},
		},
		{
			name:      "strictly less",
			filter:    dto.Filter{Field: "start_minute", Operator: dto.FilterOperatorLess, Value: 660, Table: "bookings"},
			wantWhere: "bookings.start_minute < :start_minute",
			wantArgs:  map[string]any{"start_minute": 660},
		},
		{
			name:      "strictly greater",
			filter:    dto.Filter{Field: "capacity", Operator: dto.FilterOperatorGreater, Value: 1},
			wantWhere: "capacity > :capacity",
			wantArgs:  map[string]any{"capacity": 1},
		},
		{
			name:      "any binds a single array",
			filter:    dto.Filter{Field: "status", Operator: dto.FilterOperatorAny, Value: []string{"pending", "confirmed"}},
			wantWhere: "status = ANY(:status)",
			wantArgs:  map[string]any{"status": pq.Array([]string{"pending", "confirmed"})},
		},
		{
			name:      "in expands elements",
			filter:    dto.Filter{Field: "role", Operator: dto.FilterOperatorIn, Value: []string{"admin", "customer"}},
			wantWhere: "role IN (:role_0, :role_1) ",
			wantArgs:  map[string]any{"role_0": "admin", "role_1": "customer"},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "manager_id", Operator: dto.FilterIsNull, Table: "stores"},
			wantWhere: "stores.manager_id IS NULL",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty operator joins with AND", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "id", Operator: dto.FilterOperatorEq, Value: "b-1"},
				dto.Filter{Field: "user_id", Operator: dto.FilterOperatorEq, Value: "u-1"},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(id = :id AND user_id = :user_id)", where)
		assert.Equal(t, map[string]any{"id": "b-1", "user_id": "u-1"}, args)
	})

	t.Run("nested groups and pointers", func(t *testing.T) {
		inner := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "pending"},
				&dto.Filter{ArgName: "status_2", Field: "status", Operator: dto.FilterOperatorEq, Value: "confirmed"},
			},
		}

		group := dto.NewFilterGroup(dto.Filter{Field: "service_id", Operator: dto.FilterOperatorEq, Value: "s-1"})
		group.Add(&inner)

		where, args := group.GetWhereClause()

		assert.Equal(t, "(service_id = :service_id AND (status = :status OR status = :status_2))", where)
		assert.Len(t, args, 3)
	})

	t.Run("no filters renders nothing", func(t *testing.T) {
		group := dto.NewFilterGroup()

		where, args := group.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("unknown operator is skipped", func(t *testing.T) {
		group := dto.NewFilterGroup(
			dto.Filter{Field: "a", Operator: "bogus"},
			dto.Filter{Field: "b", Operator: dto.FilterOperatorEq, Value: 1},
		)

		where, _ := group.GetWhereClause()

		assert.Equal(t, "(b = :b)", where)
	})
}
