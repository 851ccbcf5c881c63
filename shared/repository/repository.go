package repository

import (
	"airline/infras/otel"
	"airline/infras/postgres"
	"airline/shared/constant"
	"airline/shared/dto"
	"airline/shared/failure"
	"airline/shared/logger"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/lib/pq"
)

var (
	errRequiredFilter = errors.New("required filter")
)

// Repository writes and reads one table whose columns are the `db` tags of T.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entitas       string
	primaryColumn string
	columns       []string
	InsertColumns []string
}

func NewRepository[T any](entitasName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(reflect.TypeOf(zero))

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		columns:       columns,
		InsertColumns: insertColumns,
	}
}

func (repo *Repository[T]) insertQuery() string {
	placeholders := make([]string, 0, len(repo.InsertColumns))

	for _, col := range repo.InsertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholders, ", "))
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	query := repo.insertQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.DB.NamedExecContext(ctx, query, model)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return repo.insertFailure(err)
	}

	return nil
}

// InsertReturning inserts model and scans the column generated by the database into dest.
func (repo *Repository[T]) InsertReturning(ctx context.Context, model T, dest any) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.InsertReturning", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	query := fmt.Sprintf("%s RETURNING %s", repo.insertQuery(), repo.primaryColumn)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to prepare statement (%s): %w", repo.entitas, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, dest, model); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return repo.insertFailure(err)
	}

	return nil
}

// Get returns the first row matching filter, or the zero T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	var model T

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return model, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s LIMIT 1", strings.Join(repo.columns, ", "), repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to prepare statement (%s): %w", repo.entitas, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &model, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to get data (%s): %w", repo.entitas, err)
	}

	return model, nil
}

// Update sets the columns in mod on every row matching filter and reports how many rows changed.
func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return 0, errRequiredFilter
	}

	updateField := []string{}

	for _, col := range slices.Sorted(maps.Keys(mod)) {
		updateField = append(updateField, fmt.Sprintf("%s = :%s", col, col))
	}

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(updateField, ", "), where)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	maps.Copy(args, mod)

	result, err := repo.db.DB.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to update data (%s): %w", repo.entitas, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows (%s): %w", repo.entitas, err)
	}

	return affected, nil
}

// insertFailure turns constraint violations into failures the console can explain.
func (repo *Repository[T]) insertFailure(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case constant.PqErrorCodeUniqueViolation:
			return failure.Conflict(fmt.Sprintf("%s already exists", repo.entitas)) //nolint:wrapcheck
		case constant.PqErrorCodeFkViolation:
			return failure.NotFound(fmt.Sprintf("%s refers to a missing row: %s", repo.entitas, pqErr.Detail)) //nolint:wrapcheck
		}
	}

	return fmt.Errorf("failed to insert data (%s): %w", repo.entitas, err)
}

func (repo *Repository[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return fmt.Sprintf("WHERE %s", where), args
}

func getColumns(reflectType reflect.Type) (columns []string, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			col, insertCol := getColumns(field.Type)
			columns = append(columns, col...)
			insertColumns = append(insertColumns, insertCol...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" {
			continue
		}

		columns = append(columns, dbTag)

		// Columns filled by the database (sequences, defaults) are read but never inserted.
		if field.Tag.Get("generated") != "true" {
			insertColumns = append(insertColumns, dbTag)
		}
	}

	return columns, insertColumns
}
