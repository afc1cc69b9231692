package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/eventlog"
)

func TestActivityHandler_HandleHistory(t *testing.T) {
	const pattern = "/profiles/{" + ProfileIDParam + "}/activity"
	target := "/profiles/" + testProfileID + "/activity"

	tests := []struct {
		name           string
		query          string
		setupMock      func(*MockActivityService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Defaults",
			setupMock: func(m *MockActivityService) {
				m.On("History", mock.Anything, testProfileID, "", 0).Return([]eventlog.Entry{
					{ID: 2, EventType: "crystal.changed", ProfileID: testProfileID, Payload: json.RawMessage(`{"difficulty":3}`)},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"difficulty":3`,
		},
		{
			name:  "Type and limit",
			query: "?type=potion.books.changed&limit=5",
			setupMock: func(m *MockActivityService) {
				m.On("History", mock.Anything, testProfileID, "potion.books.changed", 5).Return([]eventlog.Entry{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"events":[]}`,
		},
		{
			name:           "Non-numeric limit",
			query:          "?limit=lots",
			setupMock:      func(m *MockActivityService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidLimit,
		},
		{
			name:  "Out of range limit",
			query: "?limit=9999",
			setupMock: func(m *MockActivityService) {
				m.On("History", mock.Anything, testProfileID, "", 9999).
					Return(nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, eventlog.ErrMsgInvalidLimit))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockActivityService)
			tt.setupMock(svc)
			h := NewActivityHandler(svc)

			w := serve(t, http.MethodGet, pattern, target+tt.query, nil, h.HandleHistory)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
