//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"fleet-workflow/internal/domain/user"
	"fleet-workflow/internal/handler/api"
	"fleet-workflow/internal/usecase/shared"
	"fleet-workflow/tests/common/httptest"
	sharedmock "fleet-workflow/tests/mock/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// streamRecorder satisfies http.CloseNotifier, which gin's Stream requires.
type streamRecorder struct {
	*nethttptest.ResponseRecorder
	closed chan bool
}

func newStreamRecorder() *streamRecorder {
	return &streamRecorder{ResponseRecorder: nethttptest.NewRecorder(), closed: make(chan bool, 1)}
}

func (r *streamRecorder) CloseNotify() <-chan bool { return r.closed }

func subscriptionRouter(t *testing.T) (*gin.Engine, *sharedmock.MockMessageSource) {
	ctrl := gomock.NewController(t)
	source := sharedmock.NewMockMessageSource(ctrl)
	h := api.NewSubscriptionHandler(source).WithKeepAlive(time.Hour)

	r := newRouter()
	r.GET("/api/subscriptions/:topic", fakeAuth, h.Subscribe)
	return r, source
}

func TestSubscriptionHandler_StreamsTopicMessages(t *testing.T) {
	r, source := subscriptionRouter(t)

	events := make(chan shared.Message, 2)
	payload, _ := json.Marshal(map[string]int{"count": 2})
	events <- shared.Message{Topic: shared.TopicCalendar, Payload: payload}
	close(events)

	closed := false
	source.EXPECT().Subscribe(shared.TopicCalendar).Return(shared.NewSubscription(events, func() { closed = true }))

	req := nethttptest.NewRequest(http.MethodGet, "/api/subscriptions/"+shared.TopicCalendar, nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := newStreamRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "event:"+shared.TopicCalendar)
	assert.Contains(t, rec.Body.String(), `{"count":2}`)
	assert.True(t, closed, "subscription must be released when the stream ends")
}

func TestSubscriptionHandler_Rejections(t *testing.T) {
	r, _ := subscriptionRouter(t)

	testCases := []struct {
		name           string
		topic          string
		role           user.Role
		expectedStatus int
	}{
		{"unknown topic", "cliente", user.RoleAdmin, http.StatusNotFound},
		{"technician on the admin channel", "admin", user.RoleTecnico, http.StatusForbidden},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/api/subscriptions/"+tc.topic, nil, "token",
				map[string]string{"X-Test-Role": string(tc.role)})
			httptest.AssertErrorResponse(t, rec, tc.expectedStatus, "")
		})
	}
}

func TestSubscriptionHandler_AdminMayFollowTechnicianChannel(t *testing.T) {
	r, source := subscriptionRouter(t)

	events := make(chan shared.Message)
	close(events)
	source.EXPECT().Subscribe("tecnico").Return(shared.NewSubscription(events, func() {}))

	req := nethttptest.NewRequest(http.MethodGet, "/api/subscriptions/tecnico", nil)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("X-Test-Role", string(user.RoleAdmin))
	rec := newStreamRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
