package moderation_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamforge/helixmod/pkg/helix"
	"github.com/streamforge/helixmod/pkg/helix/moderation"
)

func TestCheckAutoModStatusRequest_URI(t *testing.T) {
	t.Parallel()

	req, err := moderation.NewCheckAutoModStatusRequest("198704263")
	require.NoError(t, err)
	query := req.Query()
	assert.Equal(t, "broadcaster_id=198704263", query.Encode())
	assert.Equal(t, "moderation/enforcements/status", req.Path())
}

func TestCheckAutoModStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/moderation/enforcements/status", r.URL.Path)
		assert.Equal(t, "198704263", r.URL.Query().Get("broadcaster_id"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var wrapped struct {
			Data []moderation.AutoModMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(body, &wrapped))
		require.Len(t, wrapped.Data, 2)
		assert.Equal(t, "123", wrapped.Data[0].MsgID)
		assert.Equal(t, "Hello World!", wrapped.Data[0].MsgText)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"msg_id": "123", "is_permitted": true},
				{"msg_id": "393", "is_permitted": false}
			]
		}`))
	}))
	defer srv.Close()

	req, err := moderation.NewCheckAutoModStatusRequest("198704263")
	require.NoError(t, err)

	msgs := []moderation.AutoModMessage{
		{MsgID: "123", MsgText: "Hello World!", UserID: "44444"},
		{MsgID: "393", MsgText: "Boooo!", UserID: "44444"},
	}

	env, err := moderation.CheckAutoModStatus(context.Background(), newTestClient(srv), req, msgs)
	require.NoError(t, err)

	require.Len(t, env.Data, 2)
	assert.Equal(t, "123", env.Data[0].MsgID)
	assert.True(t, env.Data[0].IsPermitted)
	assert.False(t, env.Data[1].IsPermitted)
}

func TestCheckAutoModStatus_Validation(t *testing.T) {
	t.Parallel()

	t.Run("empty broadcaster id", func(t *testing.T) {
		t.Parallel()

		_, err := moderation.NewCheckAutoModStatusRequest("")
		var reqErr *helix.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "moderation/enforcements/status", reqErr.Endpoint)
	})

	t.Run("message missing text fails before dispatch", func(t *testing.T) {
		t.Parallel()

		req, err := moderation.NewCheckAutoModStatusRequest("1")
		require.NoError(t, err)

		// No server: validation must fail before any request goes out.
		client := newTestClient(nil)
		_, err = moderation.CheckAutoModStatus(context.Background(), client, req,
			[]moderation.AutoModMessage{{MsgID: "123", UserID: "44444"}})
		var reqErr *helix.RequestError
		require.ErrorAs(t, err, &reqErr)
	})
}
