package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"airline/infras/otel/mocks"
	pilotMocks "airline/internal/domains/pilot/mocks"
	"airline/internal/domains/pilot/model"
	"airline/internal/domains/pilot/model/dto"
	"airline/internal/domains/pilot/service"
	"airline/shared/failure"
)

func TestPilotService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := pilotMocks.NewMockPilot(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.CreatePilotRequest
		setupMock func()
		wantErr   bool
		wantCode  failure.Code
	}{
		{
			name: "successful creation",
			req:  dto.CreatePilotRequest{ID: 7, Fullname: "Ana Souza", Nationality: "Brazil"},
			setupMock: func() {
				mockRepo.EXPECT().Exists(gomock.Any(), 7).Return(false, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), model.Pilot{ID: 7, Fullname: "Ana Souza", Nationality: "Brazil"}).
					Return(nil)
			},
		},
		{
			name: "empty name and nationality are allowed",
			req:  dto.CreatePilotRequest{ID: 8},
			setupMock: func() {
				mockRepo.EXPECT().Exists(gomock.Any(), 8).Return(false, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), model.Pilot{ID: 8}).Return(nil)
			},
		},
		{
			name:      "nationality too long",
			req:       dto.CreatePilotRequest{ID: 9, Nationality: strings.Repeat("x", 26)},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  failure.CodeInvalidInput,
		},
		{
			name: "id already taken",
			req:  dto.CreatePilotRequest{ID: 7},
			setupMock: func() {
				mockRepo.EXPECT().Exists(gomock.Any(), 7).Return(true, nil)
			},
			wantErr:  true,
			wantCode: failure.CodeConflict,
		},
		{
			name: "repository error",
			req:  dto.CreatePilotRequest{ID: 7},
			setupMock: func() {
				mockRepo.EXPECT().Exists(gomock.Any(), 7).Return(false, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: failure.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
