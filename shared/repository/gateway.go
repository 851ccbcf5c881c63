package repository

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=./mocks/gateway_mock.go -package=mocks

import (
	"airline/infras/otel"
	"airline/infras/postgres"
	"airline/shared/constant"
	"airline/shared/logger"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/lib/pq"
)

const otelGatewayScopeName = constant.OtelRepositoryScopeName + ".gateway"

var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Table is a query result with every value rendered as text, in SELECT-list order.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Gateway runs single statements. Every call is its own unit of work: there
// is no transaction spanning calls.
type Gateway interface {
	Execute(ctx context.Context, statement string, args ...any) (int64, error)
	Query(ctx context.Context, statement string, args ...any) (Table, error)
	Exists(ctx context.Context, table, column string, value any) (bool, error)
}

type gatewayImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func NewGateway(db *postgres.Connection, otl otel.Otel) Gateway {
	return &gatewayImpl{
		db:   db,
		otel: otl,
	}
}

// Execute runs a statement that returns no rows and reports the affected row count.
func (g *gatewayImpl) Execute(ctx context.Context, statement string, args ...any) (int64, error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelRepositoryScopeName, otelGatewayScopeName+".Execute")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, statement)

	result, err := g.db.DB.ExecContext(ctx, statement, args...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to execute statement: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}

// Query runs a SELECT and returns all rows as text. No rows is an empty table, not an error.
func (g *gatewayImpl) Query(ctx context.Context, statement string, args ...any) (Table, error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelRepositoryScopeName, otelGatewayScopeName+".Query")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, statement)

	table := Table{Rows: [][]string{}}

	rows, err := g.db.DB.QueryxContext(ctx, statement, args...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return table, fmt.Errorf("failed to run query: %w", err)
	}
	defer rows.Close()

	if table.Columns, err = rows.Columns(); err != nil {
		return table, fmt.Errorf("failed to read columns: %w", err)
	}

	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			scope.TraceError(err)

			return table, fmt.Errorf("failed to scan row: %w", err)
		}

		record := make([]string, len(values))
		for i, value := range values {
			record[i] = Stringify(value)
		}

		table.Rows = append(table.Rows, record)
	}

	if err = rows.Err(); err != nil {
		scope.TraceError(err)

		return table, fmt.Errorf("failed to iterate rows: %w", err)
	}

	scope.SetAttribute("rows", len(table.Rows))

	return table, nil
}

// Exists reports whether table has a row whose column equals value.
func (g *gatewayImpl) Exists(ctx context.Context, table, column string, value any) (bool, error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelRepositoryScopeName, otelGatewayScopeName+".Exists")
	defer scope.End()

	if !identifierPattern.MatchString(table) || !identifierPattern.MatchString(column) {
		return false, fmt.Errorf("invalid identifier %q.%q", table, column)
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)", pq.QuoteIdentifier(table), pq.QuoteIdentifier(column))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	exist := false

	if err := g.db.DB.GetContext(ctx, &exist, query, value); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", table, err)
	}

	return exist, nil
}

// Stringify renders a driver value the way it is printed on the console.
func Stringify(value any) string {
	switch val := value.(type) {
	case nil:
		return constant.Empty
	case []byte:
		return string(val)
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format(constant.DateFormat)
		}

		return val.Format(constant.TimestampFormat)
	default:
		return fmt.Sprintf("%v", val)
	}
}
