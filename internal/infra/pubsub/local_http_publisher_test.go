package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"baxpro/internal/domain/constants"
	"baxpro/internal/domain/service"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEndpoint = "http://alert-sender.local/push"

func newMockedPublisher(t *testing.T) *localHTTPPublisher {
	t.Helper()

	p := NewLocalHTTPPublisher(testEndpoint, slog.New(slog.NewTextHandler(io.Discard, nil))).(*localHTTPPublisher)
	httpmock.ActivateNonDefault(p.httpClient)
	t.Cleanup(func() {
		httpmock.DeactivateNonDefault(p.httpClient)
		httpmock.Reset()
	})

	return p
}

func testEvent() *service.ListingAlertEvent {
	return &service.ListingAlertEvent{
		RequestID:  "req-1",
		MatchIdx:   42,
		AlertID:    "0190c7a6-3d7c-7cc0-8000-000000000001",
		AlertName:  "Pappy hunt",
		UserID:     "0190c7a6-3d7c-7cc0-8000-000000000002",
		AssetIdx:   7,
		AssetName:  "Pappy Van Winkle 15yr",
		AssetPrice: 450,
	}
}

func TestLocalHTTPPublisher_SendsPushEnvelope(t *testing.T) {
	p := newMockedPublisher(t)

	var received PushMessage
	var requestID string
	httpmock.RegisterResponder(http.MethodPost, testEndpoint, func(req *http.Request) (*http.Response, error) {
		requestID = req.Header.Get("X-Request-Id")
		if err := json.NewDecoder(req.Body).Decode(&received); err != nil {
			return nil, err
		}

		return httpmock.NewStringResponse(http.StatusNoContent, ""), nil
	})

	require.NoError(t, p.PublishListingAlert(context.Background(), testEvent()))
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
	assert.Equal(t, "req-1", requestID)

	assert.Equal(t, "42", received.Message.MessageID)
	assert.Equal(t, constants.EventTypeListingAlert, received.Message.Attributes[AttrEventType])
	assert.Equal(t, "42", received.Message.Attributes[AttrMatchIdx])
	assert.Equal(t, testEvent().AlertID, received.Message.Attributes[AttrAlertID])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.ListingAlertEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, *testEvent(), event)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	p := newMockedPublisher(t)
	httpmock.RegisterResponder(http.MethodPost, testEndpoint, httpmock.NewStringResponder(http.StatusInternalServerError, "boom"))

	err := p.PublishListingAlert(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestLocalHTTPPublisher_TransportError(t *testing.T) {
	p := newMockedPublisher(t)
	httpmock.RegisterResponder(http.MethodPost, testEndpoint, httpmock.NewErrorResponder(assert.AnError))

	assert.Error(t, p.PublishListingAlert(context.Background(), testEvent()))
}
