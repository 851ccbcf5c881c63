package dto

import "airline/internal/domains/plane/model"

type CreatePlaneRequest struct {
	ID    int    `label:"plane ID" validate:"gte=1"`
	Make  string `label:"make"     validate:"required,max=32"`
	Model string `label:"model"    validate:"required,max=64"`
	Age   int    `label:"age"      validate:"gte=0"`
	Seats int    `label:"seats"    validate:"gte=1,lt=500"`
}

func (c *CreatePlaneRequest) ToModel() model.Plane {
	return model.Plane{
		ID:    c.ID,
		Make:  c.Make,
		Model: c.Model,
		Age:   c.Age,
		Seats: c.Seats,
	}
}
