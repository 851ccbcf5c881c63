package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"airline/config"
	"airline/infras/otel/mocks"
	bookingMocks "airline/internal/domains/booking/mocks"
	"airline/internal/domains/booking/model"
	"airline/internal/domains/booking/model/dto"
	"airline/internal/domains/booking/service"
	customerMocks "airline/internal/domains/customer/mocks"
	customerDto "airline/internal/domains/customer/model/dto"
	flightMocks "airline/internal/domains/flight/mocks"
	flightModel "airline/internal/domains/flight/model"
	"airline/shared/constant"
	"airline/shared/failure"
)

type fixture struct {
	repo     *bookingMocks.MockBooking
	flight   *flightMocks.MockFlight
	customer *customerMocks.MockCustomer
	svc      service.Booking
}

func newFixture(t *testing.T, attempts int) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Booking.MaxSeatUpdateAttempts = attempts

	f := fixture{
		repo:     bookingMocks.NewMockBooking(ctrl),
		flight:   flightMocks.NewMockFlight(ctrl),
		customer: customerMocks.NewMockCustomer(ctrl),
	}
	f.svc = service.New(f.repo, f.flight, f.customer, cfg, mocks.NewOtel())

	return f
}

func profile() customerDto.CreateCustomerRequest {
	return customerDto.CreateCustomerRequest{
		ID:      42,
		Fname:   "Ada",
		Lname:   "Lovelace",
		Gtype:   "F",
		Dob:     time.Date(1990, time.December, 10, 0, 0, 0, 0, time.UTC),
		Address: "12 Analytical Way",
		Phone:   "5551234567",
		Zipcode: "92507",
	}
}

func bookRequest(seats flightModel.Seats) dto.BookFlightRequest {
	return dto.BookFlightRequest{FNum: 200, Seats: seats, Customer: profile()}
}

func TestBookingService_BookReserved(t *testing.T) {
	f := newFixture(t, 3)
	customer := profile()

	gomock.InOrder(
		f.customer.EXPECT().Exists(gomock.Any(), 42).Return(false, nil),
		f.customer.EXPECT().Insert(gomock.Any(), customer.ToModel()).Return(nil),
		f.repo.EXPECT().
			Insert(gomock.Any(), model.Reservation{CID: 42, FID: 200, Status: constant.StatusReserved}).
			Return(7, nil),
		f.flight.EXPECT().UpdateSold(gomock.Any(), 200, 177, 178).Return(true, nil),
	)

	res, err := f.svc.Book(context.Background(), bookRequest(flightModel.Seats{Capacity: 180, Sold: 177}))

	require.NoError(t, err)
	assert.Equal(t, dto.BookingResult{ReservationNumber: 7, Status: constant.StatusReserved, SeatCounted: true}, res)
}

func TestBookingService_BookWaitlisted(t *testing.T) {
	f := newFixture(t, 3)

	f.customer.EXPECT().Exists(gomock.Any(), 42).Return(false, nil)
	f.customer.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().
		Insert(gomock.Any(), model.Reservation{CID: 42, FID: 200, Status: constant.StatusWaitlisted}).
		Return(8, nil)

	res, err := f.svc.Book(context.Background(), bookRequest(flightModel.Seats{Capacity: 180, Sold: 180}))

	require.NoError(t, err)
	assert.Equal(t, 8, res.ReservationNumber)
	assert.Equal(t, constant.StatusWaitlisted, res.Status)
	assert.False(t, res.SeatCounted)
}

func TestBookingService_BookRetriesChangedCount(t *testing.T) {
	f := newFixture(t, 3)

	f.customer.EXPECT().Exists(gomock.Any(), 42).Return(false, nil)
	f.customer.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(9, nil)

	gomock.InOrder(
		f.flight.EXPECT().UpdateSold(gomock.Any(), 200, 177, 178).Return(false, nil),
		f.flight.EXPECT().Seats(gomock.Any(), 200).Return(flightModel.Seats{Capacity: 180, Sold: 178}, nil),
		f.flight.EXPECT().UpdateSold(gomock.Any(), 200, 178, 179).Return(true, nil),
	)

	res, err := f.svc.Book(context.Background(), bookRequest(flightModel.Seats{Capacity: 180, Sold: 177}))

	require.NoError(t, err)
	assert.True(t, res.SeatCounted)
}

func TestBookingService_BookGivesUpAfterAttempts(t *testing.T) {
	f := newFixture(t, 2)

	f.customer.EXPECT().Exists(gomock.Any(), 42).Return(false, nil)
	f.customer.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(10, nil)

	gomock.InOrder(
		f.flight.EXPECT().UpdateSold(gomock.Any(), 200, 177, 178).Return(false, nil),
		f.flight.EXPECT().Seats(gomock.Any(), 200).Return(flightModel.Seats{Capacity: 180, Sold: 179}, nil),
		f.flight.EXPECT().UpdateSold(gomock.Any(), 200, 179, 180).Return(false, nil),
	)

	res, err := f.svc.Book(context.Background(), bookRequest(flightModel.Seats{Capacity: 180, Sold: 177}))

	require.NoError(t, err)
	assert.Equal(t, 10, res.ReservationNumber)
	assert.Equal(t, constant.StatusReserved, res.Status)
	assert.False(t, res.SeatCounted)
}

func TestBookingService_BookErrors(t *testing.T) {
	tests := []struct {
		name      string
		req       func() dto.BookFlightRequest
		setupMock func(f fixture)
		wantCode  failure.Code
	}{
		{
			name: "customer id taken",
			req:  func() dto.BookFlightRequest { return bookRequest(flightModel.Seats{Capacity: 180}) },
			setupMock: func(f fixture) {
				f.customer.EXPECT().Exists(gomock.Any(), 42).Return(true, nil)
			},
			wantCode: failure.CodeConflict,
		},
		{
			name: "invalid phone",
			req: func() dto.BookFlightRequest {
				req := bookRequest(flightModel.Seats{Capacity: 180})
				req.Customer.Phone = "555-123"

				return req
			},
			setupMock: func(fixture) {},
			wantCode:  failure.CodeInvalidInput,
		},
		{
			name: "reservation insert fails",
			req:  func() dto.BookFlightRequest { return bookRequest(flightModel.Seats{Capacity: 180}) },
			setupMock: func(f fixture) {
				f.customer.EXPECT().Exists(gomock.Any(), 42).Return(false, nil)
				f.customer.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(0, errors.New("foreign key violation"))
			},
			wantCode: failure.CodeInternal,
		},
		{
			name: "seat update fails",
			req:  func() dto.BookFlightRequest { return bookRequest(flightModel.Seats{Capacity: 180}) },
			setupMock: func(f fixture) {
				f.customer.EXPECT().Exists(gomock.Any(), 42).Return(false, nil)
				f.customer.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(11, nil)
				f.flight.EXPECT().UpdateSold(gomock.Any(), 200, 0, 1).Return(false, errors.New("connection reset"))
			},
			wantCode: failure.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 3)
			tt.setupMock(f)

			_, err := f.svc.Book(context.Background(), tt.req())

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestBookingService_Seats(t *testing.T) {
	f := newFixture(t, 3)

	f.flight.EXPECT().Seats(gomock.Any(), 404).Return(flightModel.Seats{}, failure.NotFound("flight 404 does not exist or has no plane assigned"))

	_, err := f.svc.Seats(context.Background(), 404)

	assert.Equal(t, failure.CodeNotFound, failure.GetCode(err))
}
