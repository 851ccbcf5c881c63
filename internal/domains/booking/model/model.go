package model

const (
	TableName  = "reservation"
	EntityName = "reservation"

	FieldRNum   = "rnum"
	FieldCID    = "cid"
	FieldFID    = "fid"
	FieldStatus = "status"
)

type Reservation struct {
	RNum   int    `db:"rnum" generated:"true"`
	CID    int    `db:"cid"`
	FID    int    `db:"fid"`
	Status string `db:"status"`
}
