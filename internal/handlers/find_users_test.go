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

func TestFindAllUsersHandler(t *testing.T) {
	tests := []struct {
		name         string
		mockSetup    func(reader *MockUserFinder)
		expectedCode int
		expectedBody string
	}{
		{
			name: "passwords stripped from the listing",
			mockSetup: func(reader *MockUserFinder) {
				reader.EXPECT().List(gomock.Any()).Return([]models.MinimalUserInfo{
					{ID: 1, Email: "a@x.com"},
					{ID: 2, Email: "b@x.com"},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "empty table",
			mockSetup: func(reader *MockUserFinder) {
				reader.EXPECT().List(gomock.Any()).Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: "No users in database",
		},
		{
			name: "store failure",
			mockSetup: func(reader *MockUserFinder) {
				reader.EXPECT().List(gomock.Any()).Return(nil, errors.New("query failed"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := NewMockUserFinder(ctrl)
			tt.mockSetup(reader)

			req := httptest.NewRequest(http.MethodGet, "/v1/users/find_all", nil)
			rec := httptest.NewRecorder()

			NewFindAllUsersHandler(reader).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			}
			if tt.expectedCode == http.StatusOK {
				var users []models.MinimalUserInfo
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&users))
				assert.Len(t, users, 2)
				assert.NotContains(t, rec.Body.String(), "password")
			}
		})
	}
}

func TestFindUserByIDHandler(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		mockSetup    func(reader *MockUserFinder)
		expectedCode int
		expectedBody string
	}{
		{
			name: "found",
			path: "/v1/users/find_by_id/1",
			mockSetup: func(reader *MockUserFinder) {
				reader.EXPECT().GetByID(gomock.Any(), int64(1)).
					Return(&models.UserDB{ID: 1, Email: "a@x.com"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "absent",
			path: "/v1/users/find_by_id/42",
			mockSetup: func(reader *MockUserFinder) {
				reader.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: "No user found with uid: 42",
		},
		{
			name:         "non-numeric id",
			path:         "/v1/users/find_by_id/abc",
			mockSetup:    func(reader *MockUserFinder) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "store failure",
			path: "/v1/users/find_by_id/1",
			mockSetup: func(reader *MockUserFinder) {
				reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, errors.New("query failed"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := NewMockUserFinder(ctrl)
			tt.mockSetup(reader)

			router := chi.NewRouter()
			router.Get("/v1/users/find_by_id/{id}", NewFindUserByIDHandler(reader))

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

func TestFindUserByEmailHandler(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		mockSetup    func(reader *MockUserFinder)
		expectedCode int
		expectedBody string
	}{
		{
			name: "found",
			path: "/v1/users/find_by_email/a@x.com",
			mockSetup: func(reader *MockUserFinder) {
				reader.EXPECT().GetByEmail(gomock.Any(), "a@x.com").
					Return(&models.UserDB{ID: 1, Email: "a@x.com"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "absent",
			path: "/v1/users/find_by_email/ghost@x.com",
			mockSetup: func(reader *MockUserFinder) {
				reader.EXPECT().GetByEmail(gomock.Any(), "ghost@x.com").Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: "No user found with email: ghost@x.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := NewMockUserFinder(ctrl)
			tt.mockSetup(reader)

			router := chi.NewRouter()
			router.Get("/v1/users/find_by_email/{email}", NewFindUserByEmailHandler(reader))

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
