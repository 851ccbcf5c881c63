package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"airline/infras/otel/mocks"
	flightMocks "airline/internal/domains/flight/mocks"
	"airline/internal/domains/flight/model"
	"airline/internal/domains/flight/model/dto"
	"airline/internal/domains/flight/service"
	pilotMocks "airline/internal/domains/pilot/mocks"
	planeMocks "airline/internal/domains/plane/mocks"
	"airline/shared/failure"
)

func validFlight() dto.CreateFlightRequest {
	return dto.CreateFlightRequest{
		FNum:             200,
		Cost:             350,
		NumSold:          0,
		NumStops:         1,
		DepartureDate:    time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		ArrivalDate:      time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
		ArrivalAirport:   "JFK",
		DepartureAirport: "LAX",
		PlaneID:          101,
		PilotID:          7,
	}
}

func TestFlightService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := flightMocks.NewMockFlight(ctrl)
	mockPlane := planeMocks.NewMockPlane(ctrl)
	mockPilot := pilotMocks.NewMockPilot(ctrl)

	svc := service.New(mockRepo, mockPlane, mockPilot, mocks.NewOtel())

	tests := []struct {
		name      string
		req       func() dto.CreateFlightRequest
		setupMock func()
		wantErr   bool
		wantCode  failure.Code
	}{
		{
			name: "successful creation",
			req:  validFlight,
			setupMock: func() {
				req := validFlight()

				gomock.InOrder(
					mockRepo.EXPECT().Exists(gomock.Any(), 200).Return(false, nil),
					mockPlane.EXPECT().Exists(gomock.Any(), 101).Return(true, nil),
					mockPilot.EXPECT().Exists(gomock.Any(), 7).Return(true, nil),
					mockRepo.EXPECT().Insert(gomock.Any(), req.ToModel()).Return(nil),
					mockRepo.EXPECT().
						InsertInfo(gomock.Any(), model.FlightInfo{FlightID: 200, PilotID: 7, PlaneID: 101}).
						Return(nil),
				)
			},
		},
		{
			name: "flight number taken",
			req:  validFlight,
			setupMock: func() {
				mockRepo.EXPECT().Exists(gomock.Any(), 200).Return(true, nil)
			},
			wantErr:  true,
			wantCode: failure.CodeConflict,
		},
		{
			name: "plane missing",
			req:  validFlight,
			setupMock: func() {
				mockRepo.EXPECT().Exists(gomock.Any(), 200).Return(false, nil)
				mockPlane.EXPECT().Exists(gomock.Any(), 101).Return(false, nil)
			},
			wantErr:  true,
			wantCode: failure.CodeNotFound,
		},
		{
			name: "pilot missing",
			req:  validFlight,
			setupMock: func() {
				mockRepo.EXPECT().Exists(gomock.Any(), 200).Return(false, nil)
				mockPlane.EXPECT().Exists(gomock.Any(), 101).Return(true, nil)
				mockPilot.EXPECT().Exists(gomock.Any(), 7).Return(false, nil)
			},
			wantErr:  true,
			wantCode: failure.CodeNotFound,
		},
		{
			name: "arrival before departure",
			req: func() dto.CreateFlightRequest {
				req := validFlight()
				req.ArrivalDate = req.DepartureDate.AddDate(0, 0, -1)

				return req
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  failure.CodeInvalidInput,
		},
		{
			name: "flight info insert fails",
			req:  validFlight,
			setupMock: func() {
				mockRepo.EXPECT().Exists(gomock.Any(), 200).Return(false, nil)
				mockPlane.EXPECT().Exists(gomock.Any(), 101).Return(true, nil)
				mockPilot.EXPECT().Exists(gomock.Any(), 7).Return(true, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				mockRepo.EXPECT().InsertInfo(gomock.Any(), gomock.Any()).Return(errors.New("foreign key violation"))
			},
			wantErr:  true,
			wantCode: failure.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(context.Background(), tt.req())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
