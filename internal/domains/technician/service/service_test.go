package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"airline/infras/otel/mocks"
	technicianMocks "airline/internal/domains/technician/mocks"
	"airline/internal/domains/technician/model"
	"airline/internal/domains/technician/model/dto"
	"airline/internal/domains/technician/service"
	"airline/shared/failure"
)

func TestTechnicianService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := technicianMocks.NewMockTechnician(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.CreateTechnicianRequest
		setupMock func()
		wantErr   bool
		wantCode  failure.Code
	}{
		{
			name: "successful creation",
			req:  dto.CreateTechnicianRequest{ID: 3, FullName: "Lee Park"},
			setupMock: func() {
				mockRepo.EXPECT().Exists(gomock.Any(), 3).Return(false, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), model.Technician{ID: 3, FullName: "Lee Park"}).
					Return(nil)
			},
		},
		{
			name:      "missing full name",
			req:       dto.CreateTechnicianRequest{ID: 3},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  failure.CodeInvalidInput,
		},
		{
			name: "id already taken",
			req:  dto.CreateTechnicianRequest{ID: 3, FullName: "Lee Park"},
			setupMock: func() {
				mockRepo.EXPECT().Exists(gomock.Any(), 3).Return(true, nil)
			},
			wantErr:  true,
			wantCode: failure.CodeConflict,
		},
		{
			name: "existence probe error",
			req:  dto.CreateTechnicianRequest{ID: 3, FullName: "Lee Park"},
			setupMock: func() {
				mockRepo.EXPECT().Exists(gomock.Any(), 3).Return(false, errors.New("connection reset"))
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
