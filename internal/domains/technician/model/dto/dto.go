package dto

import "airline/internal/domains/technician/model"

type CreateTechnicianRequest struct {
	ID       int    `label:"technician ID" validate:"gte=1"`
	FullName string `label:"full name"     validate:"required,max=128"`
}

func (c *CreateTechnicianRequest) ToModel() model.Technician {
	return model.Technician{
		ID:       c.ID,
		FullName: c.FullName,
	}
}
