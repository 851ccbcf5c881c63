package model

const (
	TableName  = "pilot"
	EntityName = "pilot"

	FieldID          = "id"
	FieldFullname    = "fullname"
	FieldNationality = "nationality"
)

type Pilot struct {
	ID          int    `db:"id"`
	Fullname    string `db:"fullname"`
	Nationality string `db:"nationality"`
}
