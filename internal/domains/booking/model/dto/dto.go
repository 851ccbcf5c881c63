package dto

import (
	"airline/internal/domains/booking/model"
	customerDto "airline/internal/domains/customer/model/dto"
	flightModel "airline/internal/domains/flight/model"
	"airline/shared/constant"
)

// BookFlightRequest carries the seat counts read when the booking started so
// the seat update can be guarded by the value the operator was shown.
type BookFlightRequest struct {
	FNum     int                               `label:"flight number" validate:"gte=1"`
	Seats    flightModel.Seats                 `validate:"-"`
	Customer customerDto.CreateCustomerRequest `label:"customer"`
}

// Status is waitlisted when no seat was left at read time.
func (b *BookFlightRequest) Status() string {
	if b.Seats.Available() == 0 {
		return constant.StatusWaitlisted
	}

	return constant.StatusReserved
}

func (b *BookFlightRequest) ToModel() model.Reservation {
	return model.Reservation{
		CID:    b.Customer.ID,
		FID:    b.FNum,
		Status: b.Status(),
	}
}

type BookingResult struct {
	ReservationNumber int
	Status            string
	// SeatCounted is false when the reservation is stored but num_sold could not be moved.
	SeatCounted bool
}
