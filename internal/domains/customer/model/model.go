package model

import "time"

const (
	TableName  = "customer"
	EntityName = "customer"

	FieldID      = "id"
	FieldFname   = "fname"
	FieldLname   = "lname"
	FieldGtype   = "gtype"
	FieldDob     = "dob"
	FieldAddress = "address"
	FieldPhone   = "phone"
	FieldZipcode = "zipcode"
)

type Customer struct {
	ID      int       `db:"id"`
	Fname   string    `db:"fname"`
	Lname   string    `db:"lname"`
	Gtype   string    `db:"gtype"`
	Dob     time.Time `db:"dob"`
	Address string    `db:"address"`
	Phone   string    `db:"phone"`
	Zipcode string    `db:"zipcode"`
}
