package dto

import (
	"airline/internal/domains/customer/model"
	"time"
)

// CreateCustomerRequest is the passenger profile collected while booking a flight.
type CreateCustomerRequest struct {
	ID      int       `label:"customer ID"   validate:"gte=1"`
	Fname   string    `label:"first name"    validate:"required,max=24"`
	Lname   string    `label:"last name"     validate:"required,max=24"`
	Gtype   string    `label:"gender"        validate:"required,oneof=F M"`
	Dob     time.Time `label:"date of birth" validate:"required"`
	Address string    `label:"address"       validate:"max=256"`
	Phone   string    `label:"phone number"  validate:"required,len=10,digits"`
	Zipcode string    `label:"zipcode"       validate:"required,zipcode"`
}

func (c *CreateCustomerRequest) ToModel() model.Customer {
	return model.Customer{
		ID:      c.ID,
		Fname:   c.Fname,
		Lname:   c.Lname,
		Gtype:   c.Gtype,
		Dob:     c.Dob,
		Address: c.Address,
		Phone:   c.Phone,
		Zipcode: c.Zipcode,
	}
}
