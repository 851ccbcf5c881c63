package service

import (
	"airline/config"
	"airline/infras/otel"
	"airline/internal/domains/booking/model/dto"
	"airline/internal/domains/booking/repository"
	customerModel "airline/internal/domains/customer/model"
	customerRepo "airline/internal/domains/customer/repository"
	flightModel "airline/internal/domains/flight/model"
	flightRepo "airline/internal/domains/flight/repository"
	"airline/shared/constant"
	"airline/shared/failure"
	"airline/shared/validator"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Seats(ctx context.Context, fnum int) (flightModel.Seats, error)
	Book(ctx context.Context, req dto.BookFlightRequest) (dto.BookingResult, error)
}

type serviceImpl struct {
	repo         repository.Booking
	flightRepo   flightRepo.Flight
	customerRepo customerRepo.Customer
	cfg          *config.Config
	otel         otel.Otel
}

func New(repo repository.Booking, flightRepo flightRepo.Flight, customerRepo customerRepo.Customer, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:         repo,
		flightRepo:   flightRepo,
		customerRepo: customerRepo,
		cfg:          cfg,
		otel:         otel,
	}
}

// Seats returns the capacity and sales of fnum. A flight that is missing or
// has no plane assigned is a NotFound failure.
func (s *serviceImpl) Seats(ctx context.Context, fnum int) (seats flightModel.Seats, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Seats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	seats, err = s.flightRepo.Seats(ctx, fnum)
	if err != nil {
		log.Error().Err(err).Int("fnum", fnum).Msg("failed to read seats")

		return seats, err //nolint:wrapcheck
	}

	return seats, nil
}

// Book stores the customer and a reservation for them. A reservation on a
// flight with free seats also counts one more seat sold.
func (s *serviceImpl) Book(ctx context.Context, req dto.BookFlightRequest) (res dto.BookingResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Book")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	exist, err := s.customerRepo.Exists(ctx, req.Customer.ID)
	if err != nil {
		log.Error().Err(err).Int("cid", req.Customer.ID).Msg("failed to check if customer exists")

		return res, fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if exist {
		return res, failure.Conflict(fmt.Sprintf("%s %d already exists", customerModel.EntityName, req.Customer.ID)) //nolint:wrapcheck
	}

	if err = s.customerRepo.Insert(ctx, req.Customer.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to insert customer")

		return res, fmt.Errorf("failed to insert customer: %w", err)
	}

	reservation := req.ToModel()

	res.Status = reservation.Status

	res.ReservationNumber, err = s.repo.Insert(ctx, reservation)
	if err != nil {
		log.Error().Err(err).Msg("failed to insert reservation")

		return res, fmt.Errorf("failed to insert reservation: %w", err)
	}

	if res.Status == constant.StatusWaitlisted {
		log.Info().Int("rnum", res.ReservationNumber).Int("fnum", req.FNum).Msg("customer waitlisted")

		return res, nil
	}

	res.SeatCounted, err = s.countSeat(ctx, req.FNum, req.Seats.Sold)
	if err != nil {
		return res, fmt.Errorf("reservation %d stored but seats sold not updated: %w", res.ReservationNumber, err)
	}

	if !res.SeatCounted {
		log.Warn().Int("rnum", res.ReservationNumber).Int("fnum", req.FNum).
			Msg("seats sold kept changing, reservation stored without counting its seat")

		return res, nil
	}

	log.Info().Int("rnum", res.ReservationNumber).Int("fnum", req.FNum).Msg("flight booked")

	return res, nil
}

// countSeat moves num_sold from sold to sold+1, guarded by the value read
// before. When another writer got there first the count is read again, up to
// the configured number of attempts.
func (s *serviceImpl) countSeat(ctx context.Context, fnum, sold int) (bool, error) {
	attempts := max(s.cfg.Booking.MaxSeatUpdateAttempts, 1)

	for attempt := 1; ; attempt++ {
		updated, err := s.flightRepo.UpdateSold(ctx, fnum, sold, sold+1)
		if err != nil {
			log.Error().Err(err).Int("fnum", fnum).Msg("failed to update seats sold")

			return false, fmt.Errorf("failed to update seats sold: %w", err)
		}

		if updated {
			return true, nil
		}

		if attempt >= attempts {
			return false, nil
		}

		log.Debug().Int("fnum", fnum).Int("attempt", attempt).Int("expected_sold", sold).Msg("seats sold changed since read, retrying")

		seats, err := s.flightRepo.Seats(ctx, fnum)
		if err != nil {
			return false, fmt.Errorf("failed to read seats sold: %w", err)
		}

		sold = seats.Sold
	}
}
