package model

const (
	TableName  = "plane"
	EntityName = "plane"

	FieldID    = "id"
	FieldMake  = "make"
	FieldModel = "model"
	FieldAge   = "age"
	FieldSeats = "seats"
)

type Plane struct {
	ID    int    `db:"id"`
	Make  string `db:"make"`
	Model string `db:"model"`
	Age   int    `db:"age"`
	Seats int    `db:"seats"`
}
