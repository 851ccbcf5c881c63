package dto

import "airline/internal/domains/pilot/model"

// CreatePilotRequest leaves the name and nationality optional; only their length is bounded.
type CreatePilotRequest struct {
	ID          int    `label:"pilot ID"    validate:"gte=1"`
	Fullname    string `label:"fullname"    validate:"max=128"`
	Nationality string `label:"nationality" validate:"max=25"`
}

func (c *CreatePilotRequest) ToModel() model.Pilot {
	return model.Pilot{
		ID:          c.ID,
		Fullname:    c.Fullname,
		Nationality: c.Nationality,
	}
}
