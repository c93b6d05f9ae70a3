// Package main implements a mock Helix API server for local development.
// It serves canned moderation responses from JSON fixtures to simulate the
// Twitch Helix moderation endpoints and OAuth token endpoint without
// requiring real Twitch credentials.
package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type moderationFixture struct {
	Moderators      []json.RawMessage `json:"moderators"`
	ModeratorEvents []json.RawMessage `json:"moderator_events"`
	BannedUsers     []json.RawMessage `json:"banned_users"`
	BannedEvents    []json.RawMessage `json:"banned_events"`
}

type listResponse struct {
	Data       []json.RawMessage `json:"data"`
	Pagination struct {
		Cursor string `json:"cursor,omitempty"`
	} `json:"pagination"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/moderation.json", "path to moderation fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture",
		"moderators", len(fixture.Moderators),
		"banned_users", len(fixture.BannedUsers),
		"banned_events", len(fixture.BannedEvents))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", tokenHandler(logger))
	mux.HandleFunc("GET /helix/moderation/moderators", listHandler(logger, fixture.Moderators))
	mux.HandleFunc("GET /helix/moderation/moderators/events", listHandler(logger, fixture.ModeratorEvents))
	mux.HandleFunc("GET /helix/moderation/banned", listHandler(logger, fixture.BannedUsers))
	mux.HandleFunc("GET /helix/moderation/banned/events", listHandler(logger, fixture.BannedEvents))
	mux.HandleFunc("POST /helix/moderation/enforcements/status", automodHandler(logger))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock Helix server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*moderationFixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var f moderationFixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &f, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func tokenHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Validate credentials are present (don't verify them).
		if err := r.ParseForm(); err != nil ||
			r.PostForm.Get("client_id") == "" || r.PostForm.Get("client_secret") == "" {
			logger.Warn("token request missing credentials")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]any{
				"status":  http.StatusForbidden,
				"message": "invalid client secret",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "mock-token-" + strconv.FormatInt(int64(os.Getpid()), 16),
			"expires_in":   5011271,
			"token_type":   "bearer",
		})
		logger.Info("issued mock token")
	}
}

// authorized checks the headers every Helix request must carry.
func authorized(w http.ResponseWriter, r *http.Request) bool {
	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") || r.Header.Get("Client-Id") == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{
			"error":   "Unauthorized",
			"status":  http.StatusUnauthorized,
			"message": "OAuth token is missing",
		})
		return false
	}
	return true
}

func listHandler(logger *slog.Logger, records []json.RawMessage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		if r.URL.Query().Get("broadcaster_id") == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]any{
				"error":   "Bad Request",
				"status":  http.StatusBadRequest,
				"message": "Missing required parameter broadcaster_id",
			})
			return
		}

		first := 20
		if v, err := strconv.Atoi(r.URL.Query().Get("first")); err == nil && v > 0 && v <= 100 {
			first = v
		}

		offset := decodeCursor(r.URL.Query().Get("after"))
		if offset > len(records) {
			offset = len(records)
		}
		end := min(offset+first, len(records))

		page := records[offset:end]
		// Return empty array instead of null when no results.
		if page == nil {
			page = []json.RawMessage{}
		}

		resp := listResponse{Data: page}
		if end < len(records) {
			resp.Pagination.Cursor = encodeCursor(end)
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(resp)
		logger.Info("list", "path", r.URL.Path, "offset", offset, "returned", len(page), "total", len(records))
	}
}

func automodHandler(logger *slog.Logger) http.HandlerFunc {
	type message struct {
		MsgID   string `json:"msg_id"`
		MsgText string `json:"msg_text"`
		UserID  string `json:"user_id"`
	}
	type status struct {
		MsgID       string `json:"msg_id"`
		IsPermitted bool   `json:"is_permitted"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}

		var body struct {
			Data []message `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]any{
				"error":   "Bad Request",
				"status":  http.StatusBadRequest,
				"message": "Invalid request body",
			})
			return
		}

		// Anything mentioning "spam" gets rejected; everything else passes.
		statuses := make([]status, 0, len(body.Data))
		for _, m := range body.Data {
			statuses = append(statuses, status{
				MsgID:       m.MsgID,
				IsPermitted: !strings.Contains(strings.ToLower(m.MsgText), "spam"),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{"data": statuses})
		logger.Info("automod check", "messages", len(statuses))
	}
}

func encodeCursor(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.Itoa(offset)))
}

// decodeCursor returns 0 for an absent or malformed cursor.
func decodeCursor(cursor string) int {
	if cursor == "" {
		return 0
	}
	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(string(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
