package moderation_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamforge/helixmod/pkg/helix"
	"github.com/streamforge/helixmod/pkg/helix/moderation"
)

// newTestClient returns a client pointed at srv, or at the production origin
// when srv is nil (URI tests never dispatch).
func newTestClient(srv *httptest.Server) *helix.Client {
	opts := []helix.Option{}
	if srv != nil {
		opts = append(opts, helix.WithBaseURL(srv.URL))
	}
	return helix.NewClient("client-id", helix.NewStaticTokenProvider("token"), opts...)
}

func jsonHandler(t *testing.T, body string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestNewGetModeratorsRequest(t *testing.T) {
	t.Parallel()

	t.Run("requires broadcaster id", func(t *testing.T) {
		t.Parallel()

		_, err := moderation.NewGetModeratorsRequest("")
		var reqErr *helix.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "moderation/moderators", reqErr.Endpoint)
	})

	t.Run("optional cursor defaults to absent", func(t *testing.T) {
		t.Parallel()

		req, err := moderation.NewGetModeratorsRequest("198704263")
		require.NoError(t, err)
		assert.Empty(t, req.After)
	})
}

func TestGetModeratorsRequest_URI(t *testing.T) {
	t.Parallel()

	client := newTestClient(nil)

	req, err := moderation.NewGetModeratorsRequest("198704263")
	require.NoError(t, err)
	assert.Equal(t,
		"https://api.twitch.tv/helix/moderation/moderators?broadcaster_id=198704263",
		client.RequestURI(req))

	req, err = moderation.NewGetModeratorsRequest("198704263",
		moderation.WithModeratorsAfter("eyJiIjpudWxs"))
	require.NoError(t, err)
	assert.Equal(t,
		"https://api.twitch.tv/helix/moderation/moderators?broadcaster_id=198704263&after=eyJiIjpudWxs",
		client.RequestURI(req))
}

func TestGetModerators(t *testing.T) {
	t.Parallel()

	// From the platform API docs.
	const payload = `{
		"data": [
			{"user_id": "424596340", "user_name": "quotrok"},
			{"user_id": "424596340", "user_name": "quotrok"}
		],
		"pagination": {
			"cursor": "eyJiIjpudWxsLCJhIjp7IkN1cnNvciI6IjEwMDQ3MzA2NDo4NjQwNjU3MToxSVZCVDFKMnY5M1BTOXh3d1E0dUdXMkJOMFcifX0"
		}
	}`

	srv := httptest.NewServer(jsonHandler(t, payload))
	defer srv.Close()

	req, err := moderation.NewGetModeratorsRequest("198704263")
	require.NoError(t, err)

	env, err := moderation.GetModerators(context.Background(), newTestClient(srv), req)
	require.NoError(t, err)

	require.Len(t, env.Data, 2)
	assert.Equal(t, "424596340", env.Data[0].UserID)
	assert.Equal(t, "quotrok", env.Data[0].UserName)
	assert.Equal(t,
		helix.Cursor("eyJiIjpudWxsLCJhIjp7IkN1cnNvciI6IjEwMDQ3MzA2NDo4NjQwNjU3MToxSVZCVDFKMnY5M1BTOXh3d1E0dUdXMkJOMFcifX0"),
		env.Pagination.Cursor)
}
