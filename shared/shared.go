package shared

import (
	"airline/shared/dto"
	"airline/shared/failure"
	"airline/shared/validator"
	"context"
	"fmt"
)

// ExistsFunc reports whether a row with the given id is stored.
type ExistsFunc func(ctx context.Context, id int) (bool, error)

// NewID returns a field parser for the id of a row about to be created: a
// positive number that no stored row uses yet.
func NewID(ctx context.Context, name, entity string, exists ExistsFunc) func(string) (int, error) {
	return func(raw string) (int, error) {
		id, err := validator.PositiveNumber(name, raw)
		if err != nil {
			return 0, err
		}

		found, err := exists(ctx, id)
		if err != nil {
			return 0, fmt.Errorf("failed to check %s %d: %w", entity, id, err)
		}

		if found {
			return 0, failure.Conflict(fmt.Sprintf("%s %d already exists", entity, id)) //nolint:wrapcheck
		}

		return id, nil
	}
}

// ExistingID returns a field parser for a reference to a stored row.
func ExistingID(ctx context.Context, name, entity string, exists ExistsFunc) func(string) (int, error) {
	return func(raw string) (int, error) {
		id, err := validator.PositiveNumber(name, raw)
		if err != nil {
			return 0, err
		}

		found, err := exists(ctx, id)
		if err != nil {
			return 0, fmt.Errorf("failed to check %s %d: %w", entity, id, err)
		}

		if !found {
			return 0, failure.BadRequestFromString(fmt.Sprintf("%s %d does not exist", entity, id)) //nolint:wrapcheck
		}

		return id, nil
	}
}

// FilterByID selects the row of table whose fieldID equals id.
func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
