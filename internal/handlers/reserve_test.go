package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gift-registry/pkg/models"
	"github.com/sbilibin2017/gift-registry/internal/services"
)

func TestReserveHandler(t *testing.T) {
	holder := int64(5)

	tests := []struct {
		name         string
		path         string
		mockSetup    func(svc *MockReserver)
		expectedCode int
		expectedBody string
	}{
		{
			name: "claims the gift",
			path: "/v1/gifts/reserve/11/5",
			mockSetup: func(svc *MockReserver) {
				svc.EXPECT().Reserve(gomock.Any(), int64(11), int64(5)).
					Return(&models.GiftIdeaResponseBody{
						ID:               11,
						Title:            "Socks",
						OwnerID:          1,
						RecipientUserID:  2,
						ReservedByUserID: &holder,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "missing gift idea",
			path: "/v1/gifts/reserve/99/5",
			mockSetup: func(svc *MockReserver) {
				svc.EXPECT().Reserve(gomock.Any(), int64(99), int64(5)).
					Return(nil, services.ErrGiftIdeaNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: "No gift idea found with uid: 99",
		},
		{
			name:         "non-numeric gift id",
			path:         "/v1/gifts/reserve/socks/5",
			mockSetup:    func(svc *MockReserver) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "non-numeric user id",
			path:         "/v1/gifts/reserve/11/alice",
			mockSetup:    func(svc *MockReserver) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "store failure",
			path: "/v1/gifts/reserve/11/5",
			mockSetup: func(svc *MockReserver) {
				svc.EXPECT().Reserve(gomock.Any(), int64(11), int64(5)).
					Return(nil, errors.New("update failed"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockReserver(ctrl)
			tt.mockSetup(svc)

			router := chi.NewRouter()
			router.Patch("/v1/gifts/reserve/{giftId}/{userId}", NewReserveHandler(svc))

			req := httptest.NewRequest(http.MethodPatch, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			}
			if tt.expectedCode == http.StatusOK {
				var gift models.GiftIdeaResponseBody
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&gift))
				assert.Equal(t, int64(5), *gift.ReservedByUserID)
				assert.NotContains(t, rec.Body.String(), "date_added")
			}
		})
	}
}

func TestUnreserveHandler(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		mockSetup    func(svc *MockReserver)
		expectedCode int
		expectedBody string
	}{
		{
			name: "clears any holder",
			path: "/v1/gifts/unreserve/11",
			mockSetup: func(svc *MockReserver) {
				svc.EXPECT().Unreserve(gomock.Any(), int64(11)).
					Return(&models.GiftIdeaResponseBody{ID: 11, Title: "Socks", OwnerID: 1, RecipientUserID: 2}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "missing gift idea",
			path: "/v1/gifts/unreserve/99",
			mockSetup: func(svc *MockReserver) {
				svc.EXPECT().Unreserve(gomock.Any(), int64(99)).
					Return(nil, services.ErrGiftIdeaNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: "No gift idea found with uid: 99",
		},
		{
			name:         "non-numeric gift id",
			path:         "/v1/gifts/unreserve/socks",
			mockSetup:    func(svc *MockReserver) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockReserver(ctrl)
			tt.mockSetup(svc)

			router := chi.NewRouter()
			router.Patch("/v1/gifts/unreserve/{giftId}", NewUnreserveHandler(svc))

			req := httptest.NewRequest(http.MethodPatch, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			}
			if tt.expectedCode == http.StatusOK {
				var gift models.GiftIdeaResponseBody
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&gift))
				assert.Nil(t, gift.ReservedByUserID)
			}
		})
	}
}
