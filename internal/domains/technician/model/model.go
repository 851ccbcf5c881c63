package model

const (
	TableName  = "technician"
	EntityName = "technician"

	FieldID       = "id"
	FieldFullName = "full_name"
)

type Technician struct {
	ID       int    `db:"id"`
	FullName string `db:"full_name"`
}
