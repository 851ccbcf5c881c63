package booking

import (
	"airline/infras/otel"
	"airline/internal/domains/booking/model/dto"
	"airline/internal/domains/booking/service"
	customerModel "airline/internal/domains/customer/model"
	customerDto "airline/internal/domains/customer/model/dto"
	customerService "airline/internal/domains/customer/service"
	"airline/shared"
	"airline/shared/constant"
	"airline/shared/prompt"
	"airline/shared/validator"
	"context"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service         service.Booking
	customerService customerService.Customer
	otel            otel.Otel
}

func New(service service.Booking, customerService customerService.Customer, otel otel.Otel) Handler {
	return Handler{
		service:         service,
		customerService: customerService,
		otel:            otel,
	}
}

// BookFlight reserves a seat for a new customer, or waitlists them when the
// flight is full and the operator agrees.
func (handler *Handler) BookFlight(ctx context.Context, p *prompt.Prompter) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookFlight")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	p.Println("\n--- Book Flight ---")

	req := dto.BookFlightRequest{}

	if req.FNum, err = prompt.Ask(p, "Flight number: ", validator.Field("flight number", validator.Number)); err != nil {
		return err
	}

	if req.Seats, err = handler.service.Seats(ctx, req.FNum); err != nil {
		return err //nolint:wrapcheck
	}

	if req.Seats.Available() == 0 {
		p.Printf("Flight %d has no seats available.\n", req.FNum)

		var waitlist bool

		if waitlist, err = prompt.Ask(p, "Add the customer to the waitlist? (yes/no): ", validator.YesNo); err != nil {
			return err
		}

		if !waitlist {
			log.Info().Int("fnum", req.FNum).Msg("booking cancelled on a full flight")
			p.Println("Booking cancelled, nothing was saved.")

			return nil
		}
	} else {
		p.Printf("Flight %d has %d seat(s) available.\n", req.FNum, req.Seats.Available())
	}

	if req.Customer, err = handler.askCustomer(ctx, p); err != nil {
		return err
	}

	res, err := handler.service.Book(ctx, req)
	if err != nil {
		return err //nolint:wrapcheck
	}

	p.Printf("Reservation %d created with status %s.\n", res.ReservationNumber, res.Status)

	if res.Status == constant.StatusReserved && !res.SeatCounted {
		p.Printf("Warning: seats sold of flight %d could not be updated, please check it.\n", req.FNum)
	}

	return nil
}

func (handler *Handler) askCustomer(ctx context.Context, p *prompt.Prompter) (req customerDto.CreateCustomerRequest, err error) {
	if req.ID, err = prompt.Ask(p, "Customer ID: ", shared.NewID(ctx, "customer ID", customerModel.EntityName, handler.customerService.Exists)); err != nil {
		return req, err
	}

	if req.Fname, err = prompt.Ask(p, "First name: ", validator.Field("first name", validator.MaxText(constant.MaxCustomerNameLength))); err != nil {
		return req, err
	}

	if req.Lname, err = prompt.Ask(p, "Last name: ", validator.Field("last name", validator.MaxText(constant.MaxCustomerNameLength))); err != nil {
		return req, err
	}

	if req.Gtype, err = prompt.Ask(p, "Gender (F/M): ", validator.Gender); err != nil {
		return req, err
	}

	if req.Dob, err = prompt.Ask(p, "Date of birth (YYYY-MM-DD): ", validator.Field("date of birth", validator.Date)); err != nil {
		return req, err
	}

	if req.Address, err = prompt.Ask(p, "Address: ", validator.Field("address", validator.OptionalMaxText(constant.MaxCustomerAddressLength))); err != nil {
		return req, err
	}

	if req.Phone, err = prompt.Ask(p, "Phone number (10 digits): ", validator.Phone); err != nil {
		return req, err
	}

	if req.Zipcode, err = prompt.Ask(p, "Zipcode: ", validator.Zipcode); err != nil {
		return req, err
	}

	return req, nil
}
