package helix_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamforge/helixmod/pkg/helix"
)

func TestNextPage(t *testing.T) {
	t.Parallel()

	t.Run("advances only the cursor", func(t *testing.T) {
		t.Parallel()

		req := &listRequest{BroadcasterID: "1", UserIDs: []string{"2", "3"}}
		env := &helix.Envelope[record]{
			Pagination: helix.Pagination{Cursor: "next-cursor"},
		}

		require.True(t, helix.NextPage(req, env))
		assert.Equal(t, "1", req.BroadcasterID)
		assert.Equal(t, []string{"2", "3"}, req.UserIDs)
		assert.Equal(t, helix.Cursor("next-cursor"), req.After)
	})

	t.Run("exhausted envelope yields no next request", func(t *testing.T) {
		t.Parallel()

		req := &listRequest{BroadcasterID: "1", After: "current"}
		env := &helix.Envelope[record]{}

		require.False(t, helix.NextPage(req, env))
		// The request is untouched, including its current cursor.
		assert.Equal(t, helix.Cursor("current"), req.After)
	})
}

func TestPaginator(t *testing.T) {
	t.Parallel()

	// Three pages: the first two carry a cursor, the third does not.
	pages := map[string]string{
		"":   `{"data": [{"user_id": "1", "user_name": "a"}], "pagination": {"cursor": "p2"}}`,
		"p2": `{"data": [{"user_id": "2", "user_name": "b"}], "pagination": {"cursor": "p3"}}`,
		"p3": `{"data": [{"user_id": "3", "user_name": "c"}], "pagination": {}}`,
	}

	newServer := func(t *testing.T) *httptest.Server {
		t.Helper()
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, ok := pages[r.URL.Query().Get("after")]
			if !ok {
				t.Errorf("unexpected cursor %q", r.URL.Query().Get("after"))
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, body)
		}))
	}

	t.Run("walks pages until exhausted", func(t *testing.T) {
		t.Parallel()

		srv := newServer(t)
		defer srv.Close()

		client := helix.NewClient("cid", helix.NewStaticTokenProvider("tok"),
			helix.WithBaseURL(srv.URL))

		req := &listRequest{BroadcasterID: "1"}
		pager := helix.NewPaginator[record](client, req)

		var users []string
		for pager.More() {
			env, err := pager.Next(context.Background())
			require.NoError(t, err)
			for _, rec := range env.Data {
				users = append(users, rec.UserName)
			}
		}

		assert.Equal(t, []string{"a", "b", "c"}, users)
		assert.Equal(t, 3, pager.Pages())
		assert.False(t, pager.More())
	})

	t.Run("respects max pages", func(t *testing.T) {
		t.Parallel()

		srv := newServer(t)
		defer srv.Close()

		client := helix.NewClient("cid", helix.NewStaticTokenProvider("tok"),
			helix.WithBaseURL(srv.URL))

		req := &listRequest{BroadcasterID: "1"}
		pager := helix.NewPaginator[record](client, req, helix.WithMaxPages(2))

		for pager.More() {
			_, err := pager.Next(context.Background())
			require.NoError(t, err)
		}

		assert.Equal(t, 2, pager.Pages())
	})

	t.Run("logs per-page progress", func(t *testing.T) {
		t.Parallel()

		srv := newServer(t)
		defer srv.Close()

		client := helix.NewClient("cid", helix.NewStaticTokenProvider("tok"),
			helix.WithBaseURL(srv.URL))

		var buf bytes.Buffer
		logger := log.New(&buf)
		logger.SetLevel(log.DebugLevel)

		pager := helix.NewPaginator[record](client, &listRequest{BroadcasterID: "1"},
			helix.WithPaginatorLogger(logger))

		for pager.More() {
			_, err := pager.Next(context.Background())
			require.NoError(t, err)
		}

		out := buf.String()
		assert.Equal(t, 3, strings.Count(out, "fetched page"))
		assert.Contains(t, out, "records=1")
		assert.Contains(t, out, "more=false")
	})

	t.Run("next after exhaustion fails without fetching", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"data": []}`)
		}))
		defer srv.Close()

		client := helix.NewClient("cid", helix.NewStaticTokenProvider("tok"),
			helix.WithBaseURL(srv.URL))

		pager := helix.NewPaginator[record](client, &listRequest{BroadcasterID: "1"})

		_, err := pager.Next(context.Background())
		require.NoError(t, err)

		_, err = pager.Next(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no more pages")
	})
}
