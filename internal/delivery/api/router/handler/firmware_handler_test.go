package handler

import (
	"net/http"
	"testing"

	"peeko/internal/domain/entity"
	domainerrors "peeko/internal/domain/errors"
	"peeko/internal/usecase"
	mockUsecase "peeko/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestFirmwareHandler(t *testing.T) (*FirmwareHandler, *mockUsecase.MockFirmwareUsecase) {
	firmwareUC := mockUsecase.NewMockFirmwareUsecase(t)

	return NewFirmwareHandler(FirmwareHandlerParams{FirmwareUC: firmwareUC, Logger: newDiscardLogger()}), firmwareUC
}

func TestFirmwareHandler_PublishVersion(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *mockUsecase.MockFirmwareUsecase)
		wantStatus int
	}{
		{
			name: "published",
			body: `{"name":"1.2.0","link":"https://cdn.example.com/fw/120.bin","number":12}`,
			setup: func(m *mockUsecase.MockFirmwareUsecase) {
				m.EXPECT().PublishVersion(mock.Anything, &usecase.PublishFirmwareInput{
					Name: "1.2.0", Link: "https://cdn.example.com/fw/120.bin", Number: 12,
				}).Return(&entity.FirmwareVersion{Name: "1.2.0", Number: 12}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate number",
			body: `{"name":"1.2.0","link":"https://cdn.example.com/fw/120.bin","number":12}`,
			setup: func(m *mockUsecase.MockFirmwareUsecase) {
				m.EXPECT().PublishVersion(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrFirmwareVersionExists)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "link is not a url",
			body:       `{"name":"1.2.0","link":"nope","number":12}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "number must be positive",
			body:       `{"name":"1.2.0","link":"https://cdn.example.com/fw.bin","number":0}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, firmwareUC := newTestFirmwareHandler(t)
			if tt.setup != nil {
				tt.setup(firmwareUC)
			}

			c, rec := newJSONContext(http.MethodPost, "/dashboard/firmware", tt.body, nil)

			require.NoError(t, h.PublishVersion(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestFirmwareHandler_LatestVersion(t *testing.T) {
	h, firmwareUC := newTestFirmwareHandler(t)
	firmwareUC.EXPECT().LatestVersion(mock.Anything).Return(nil, domainerrors.ErrFirmwareNotFound)

	c, rec := newJSONContext(http.MethodGet, "/api/v1/firmware/latest", "", nil)

	require.NoError(t, h.LatestVersion(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
