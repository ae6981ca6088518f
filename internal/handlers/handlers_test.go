package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"lavaclimb.dev/internal/config"
	"lavaclimb.dev/internal/generation"
	"lavaclimb.dev/internal/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(SetupRoutes(config.Default()))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}, out interface{}) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp.StatusCode
}

func createLevel(t *testing.T, srv *httptest.Server, difficulty string, seed uint64) models.LevelSnapshot {
	t.Helper()
	var snap models.LevelSnapshot
	status := doJSON(t, http.MethodPost, srv.URL+"/api/levels",
		models.CreateLevelRequest{Difficulty: difficulty, Seed: &seed}, &snap)
	if status != http.StatusCreated {
		t.Fatalf("create level: status %d", status)
	}
	return snap
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	var body map[string]string
	if status := doJSON(t, http.MethodGet, srv.URL+"/api/health", nil, &body); status != http.StatusOK {
		t.Fatalf("status %d", status)
	}
	if body["status"] != "ok" {
		t.Errorf("unexpected body %v", body)
	}
}

func TestLevelRoutes(t *testing.T) {
	srv := newTestServer(t)
	snap := createLevel(t, srv, "normal", 42)
	base := srv.URL + "/api/levels/" + snap.Level.ID

	if snap.Level.Difficulty != "normal" || len(snap.Objects) == 0 {
		t.Fatalf("unexpected snapshot %+v", snap.Level)
	}

	var got models.LevelSnapshot
	if status := doJSON(t, http.MethodGet, base, nil, &got); status != http.StatusOK {
		t.Fatalf("get level: status %d", status)
	}
	if got.Level.Seed != 42 {
		t.Errorf("seed not kept, got %d", got.Level.Seed)
	}

	var vp models.ViewportData
	if status := doJSON(t, http.MethodGet, base+"/viewport?top=500&bottom=600", nil, &vp); status != http.StatusOK {
		t.Fatalf("viewport: status %d", status)
	}
	if len(vp.Objects) == 0 {
		t.Errorf("starting area should be in view")
	}
	if status := doJSON(t, http.MethodGet, base+"/viewport?top=abc", nil, nil); status != http.StatusBadRequest {
		t.Errorf("bad viewport param: status %d", status)
	}

	var batch models.CommandBatch
	if status := doJSON(t, http.MethodPost, base+"/scroll", models.ScrollRequest{ScrollY: -600}, &batch); status != http.StatusOK {
		t.Fatalf("scroll: status %d", status)
	}
	if len(batch.Commands) == 0 || batch.ScrollY != -600 {
		t.Errorf("expected commands for a one-screen scroll, got %+v", batch)
	}

	var audit models.AuditResult
	if status := doJSON(t, http.MethodGet, base+"/audit", nil, &audit); status != http.StatusOK {
		t.Fatalf("audit: status %d", status)
	}
	if !audit.Valid {
		t.Errorf("audit failed: %+v", audit)
	}

	var list []models.LevelInfo
	if status := doJSON(t, http.MethodGet, srv.URL+"/api/levels", nil, &list); status != http.StatusOK || len(list) != 1 {
		t.Fatalf("list: status %d, %d levels", status, len(list))
	}

	if status := doJSON(t, http.MethodDelete, base, nil, nil); status != http.StatusNoContent {
		t.Fatalf("delete: status %d", status)
	}
	if status := doJSON(t, http.MethodGet, base, nil, nil); status != http.StatusNotFound {
		t.Errorf("deleted level: status %d", status)
	}
}

func TestLevelRouteErrors(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/levels", "application/json", strings.NewReader("{"))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("malformed body: status %d", resp.StatusCode)
	}

	if status := doJSON(t, http.MethodPost, srv.URL+"/api/levels",
		models.CreateLevelRequest{Difficulty: "nightmare"}, nil); status != http.StatusBadRequest {
		t.Errorf("unknown difficulty: status %d", status)
	}

	if status := doJSON(t, http.MethodPost, srv.URL+"/api/levels/nope/scroll",
		models.ScrollRequest{ScrollY: -10}, nil); status != http.StatusNotFound {
		t.Errorf("unknown level: status %d", status)
	}

	snap := createLevel(t, srv, "normal", 5)
	if status := doJSON(t, http.MethodPost, srv.URL+"/api/levels/"+snap.Level.ID+"/scroll",
		models.ScrollRequest{ScrollY: -1e300}, nil); status != http.StatusBadRequest {
		t.Errorf("runaway scroll: status %d", status)
	}
	if status := doJSON(t, http.MethodGet, srv.URL+"/api/levels/"+snap.Level.ID, nil, nil); status != http.StatusOK {
		t.Errorf("level should stay usable after a rejected scroll: status %d", status)
	}
}

func TestCatalogRoutes(t *testing.T) {
	srv := newTestServer(t)

	var patterns models.PatternList
	if status := doJSON(t, http.MethodGet, srv.URL+"/api/patterns", nil, &patterns); status != http.StatusOK {
		t.Fatalf("patterns: status %d", status)
	}
	if len(patterns.Patterns) != len(generation.DefaultPatterns()) {
		t.Errorf("expected full catalog, got %d", len(patterns.Patterns))
	}

	var pattern models.PatternInfo
	if status := doJSON(t, http.MethodGet, srv.URL+"/api/patterns/zigzag", nil, &pattern); status != http.StatusOK {
		t.Fatalf("pattern: status %d", status)
	}
	if pattern.Category != "medium" {
		t.Errorf("unexpected pattern %+v", pattern)
	}
	if status := doJSON(t, http.MethodGet, srv.URL+"/api/patterns/nope", nil, nil); status != http.StatusNotFound {
		t.Errorf("unknown pattern: status %d", status)
	}

	var difficulties []models.DifficultyInfo
	if status := doJSON(t, http.MethodGet, srv.URL+"/api/difficulties", nil, &difficulties); status != http.StatusOK {
		t.Fatalf("difficulties: status %d", status)
	}
	if len(difficulties) != 5 {
		t.Errorf("expected 5 presets, got %d", len(difficulties))
	}

	var hard models.DifficultyInfo
	if status := doJSON(t, http.MethodGet, srv.URL+"/api/difficulties/hard", nil, &hard); status != http.StatusOK {
		t.Fatalf("difficulty: status %d", status)
	}
	if hard.Hearts != 2 || hard.Level != generation.Hard {
		t.Errorf("unexpected preset %+v", hard)
	}
	if status := doJSON(t, http.MethodGet, srv.URL+"/api/difficulties/brutal", nil, nil); status != http.StatusNotFound {
		t.Errorf("unknown difficulty: status %d", status)
	}
}

func streamURL(srv *httptest.Server, id string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/levels/" + id + "/stream"
}

func TestStream(t *testing.T) {
	srv := newTestServer(t)
	snap := createLevel(t, srv, "easy", 9)

	conn, resp, err := websocket.DefaultDialer.Dial(streamURL(srv, snap.Level.ID), nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		t.Fatalf("failed to open websocket connection: %v", err)
	}
	t.Cleanup(func() {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	})

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.WriteJSON(models.ScrollRequest{ScrollY: -1e300}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.WriteJSON(models.ScrollRequest{ScrollY: -900}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var batch models.CommandBatch
	if err := conn.ReadJSON(&batch); err != nil {
		t.Fatalf("read: %v", err)
	}
	if batch.LevelID != snap.Level.ID || batch.ScrollY != -900 {
		t.Fatalf("unexpected batch header %+v", batch)
	}
	created := 0
	for _, c := range batch.Commands {
		if c.Op == generation.OpCreate {
			created++
		}
	}
	if created == 0 {
		t.Errorf("scrolling should stream new objects")
	}
	if batch.GeneratedHeight < 900+generation.GameHeight*2 {
		t.Errorf("generation should run two screens ahead, got %v", batch.GeneratedHeight)
	}
}

func TestStreamUnknownLevel(t *testing.T) {
	srv := newTestServer(t)
	_, resp, err := websocket.DefaultDialer.Dial(streamURL(srv, "missing"), nil)
	if err == nil {
		t.Fatalf("expected handshake to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %+v", resp)
	}
	resp.Body.Close()
}
