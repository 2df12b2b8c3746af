package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gift-registry/pkg/models"
)

func TestAddGiftHandler(t *testing.T) {
	now := time.Now().Truncate(time.Second)

	tests := []struct {
		name         string
		body         string
		mockSetup    func(writer *MockGiftIdeaSaver)
		expectedCode int
	}{
		{
			name: "created row starts unreserved",
			body: `{"title":"Socks","owner_id":1,"recipient_user_id":2}`,
			mockSetup: func(writer *MockGiftIdeaSaver) {
				writer.EXPECT().Save(gomock.Any(), &models.GiftIdeaRequestBody{Title: "Socks", OwnerID: 1, RecipientUserID: 2}).
					Return(&models.GiftIdeaDB{
						ID:               11,
						Title:            "Socks",
						DateAdded:        now,
						DateLastModified: now,
						OwnerID:          1,
						RecipientUserID:  2,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid body",
			body:         `{"title":`,
			mockSetup:    func(writer *MockGiftIdeaSaver) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "store failure",
			body: `{"title":"Socks","owner_id":1,"recipient_user_id":2}`,
			mockSetup: func(writer *MockGiftIdeaSaver) {
				writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, errors.New("insert failed"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			writer := NewMockGiftIdeaSaver(ctrl)
			tt.mockSetup(writer)

			req := httptest.NewRequest(http.MethodPost, "/v1/gifts/add", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			NewAddGiftHandler(writer).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var gift models.GiftIdeaDB
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&gift))
				assert.Equal(t, int64(11), gift.ID)
				assert.Nil(t, gift.ReservedByUserID)
				assert.Nil(t, gift.DateReserved)
			}
		})
	}
}
