package model

import "time"

const (
	TableName  = "flight"
	EntityName = "flight"

	FieldFNum             = "fnum"
	FieldCost             = "cost"
	FieldNumSold          = "num_sold"
	FieldNumStops         = "num_stops"
	FieldDepartureDate    = "actual_departure_date"
	FieldArrivalDate      = "actual_arrival_date"
	FieldArrivalAirport   = "arrival_airport"
	FieldDepartureAirport = "departure_airport"
)

const (
	InfoTableName  = "flightinfo"
	InfoEntityName = "flight info"

	FieldInfoID       = "fiid"
	FieldInfoFlightID = "flight_id"
	FieldInfoPilotID  = "pilot_id"
	FieldInfoPlaneID  = "plane_id"
)

type Flight struct {
	FNum             int       `db:"fnum"`
	Cost             int       `db:"cost"`
	NumSold          int       `db:"num_sold"`
	NumStops         int       `db:"num_stops"`
	DepartureDate    time.Time `db:"actual_departure_date"`
	ArrivalDate      time.Time `db:"actual_arrival_date"`
	ArrivalAirport   string    `db:"arrival_airport"`
	DepartureAirport string    `db:"departure_airport"`
}

// FlightInfo assigns the plane and pilot operating a flight.
type FlightInfo struct {
	ID       int `db:"fiid" generated:"true"`
	FlightID int `db:"flight_id"`
	PilotID  int `db:"pilot_id"`
	PlaneID  int `db:"plane_id"`
}

// Seats is the capacity of the plane assigned to a flight and the seats sold on it.
type Seats struct {
	Capacity int
	Sold     int
}

// Available never goes below zero, even when more seats were sold than the plane holds.
func (s Seats) Available() int {
	return max(s.Capacity-s.Sold, 0)
}
