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
)

func TestFindGiftByIDHandler(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		mockSetup    func(reader *MockGiftIdeaFinder)
		expectedCode int
		expectedBody string
	}{
		{
			name: "found",
			path: "/v1/gifts/find_by_id/11",
			mockSetup: func(reader *MockGiftIdeaFinder) {
				reader.EXPECT().GetByID(gomock.Any(), int64(11)).
					Return(&models.GiftIdeaDB{ID: 11, Title: "Socks", OwnerID: 1, RecipientUserID: 2}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "absent",
			path: "/v1/gifts/find_by_id/99",
			mockSetup: func(reader *MockGiftIdeaFinder) {
				reader.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: "No gift idea found with uid: 99",
		},
		{
			name:         "non-numeric id",
			path:         "/v1/gifts/find_by_id/socks",
			mockSetup:    func(reader *MockGiftIdeaFinder) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "store failure",
			path: "/v1/gifts/find_by_id/11",
			mockSetup: func(reader *MockGiftIdeaFinder) {
				reader.EXPECT().GetByID(gomock.Any(), int64(11)).Return(nil, errors.New("query failed"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := NewMockGiftIdeaFinder(ctrl)
			tt.mockSetup(reader)

			router := chi.NewRouter()
			router.Get("/v1/gifts/find_by_id/{id}", NewFindGiftByIDHandler(reader))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestFindAllGiftsHandler(t *testing.T) {
	tests := []struct {
		name         string
		mockSetup    func(reader *MockGiftIdeaFinder)
		expectedCode int
		expectedBody string
	}{
		{
			name: "two gifts",
			mockSetup: func(reader *MockGiftIdeaFinder) {
				reader.EXPECT().List(gomock.Any()).Return([]models.GiftIdeaDB{
					{ID: 1, Title: "Socks", OwnerID: 1, RecipientUserID: 2},
					{ID: 2, Title: "Book", OwnerID: 1, RecipientUserID: 2},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "empty table",
			mockSetup: func(reader *MockGiftIdeaFinder) {
				reader.EXPECT().List(gomock.Any()).Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: "No gift ideas in database",
		},
		{
			name: "store failure",
			mockSetup: func(reader *MockGiftIdeaFinder) {
				reader.EXPECT().List(gomock.Any()).Return(nil, errors.New("query failed"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := NewMockGiftIdeaFinder(ctrl)
			tt.mockSetup(reader)

			req := httptest.NewRequest(http.MethodGet, "/v1/gifts/find_all", nil)
			rec := httptest.NewRecorder()

			NewFindAllGiftsHandler(reader).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			}
			if tt.expectedCode == http.StatusOK {
				var gifts []models.GiftIdeaDB
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&gifts))
				assert.Len(t, gifts, 2)
			}
		})
	}
}
