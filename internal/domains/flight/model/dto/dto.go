package dto

import (
	"airline/internal/domains/flight/model"
	"time"
)

type CreateFlightRequest struct {
	FNum             int       `label:"flight number"     validate:"gte=1"`
	Cost             int       `label:"cost"              validate:"gte=1"`
	NumSold          int       `label:"seats sold"        validate:"gte=0"`
	NumStops         int       `label:"number of stops"   validate:"gte=0"`
	DepartureDate    time.Time `label:"departure date"    validate:"required"`
	ArrivalDate      time.Time `label:"arrival date"      validate:"required,gtefield=DepartureDate"`
	ArrivalAirport   string    `label:"arrival airport"   validate:"required,max=5"`
	DepartureAirport string    `label:"departure airport" validate:"required,max=5"`
	PlaneID          int       `label:"plane ID"          validate:"gte=1"`
	PilotID          int       `label:"pilot ID"          validate:"gte=1"`
}

func (c *CreateFlightRequest) ToModel() model.Flight {
	return model.Flight{
		FNum:             c.FNum,
		Cost:             c.Cost,
		NumSold:          c.NumSold,
		NumStops:         c.NumStops,
		DepartureDate:    c.DepartureDate,
		ArrivalDate:      c.ArrivalDate,
		ArrivalAirport:   c.ArrivalAirport,
		DepartureAirport: c.DepartureAirport,
	}
}

func (c *CreateFlightRequest) ToInfoModel() model.FlightInfo {
	return model.FlightInfo{
		FlightID: c.FNum,
		PilotID:  c.PilotID,
		PlaneID:  c.PlaneID,
	}
}
