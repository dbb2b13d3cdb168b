package server

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/middleearth/internal/domain"
	"github.com/osse101/middleearth/internal/event"
	"github.com/osse101/middleearth/internal/logger"
	"github.com/osse101/middleearth/internal/sse"
	"github.com/osse101/middleearth/internal/testing/leaktest"
)

func newTestServer(t *testing.T) (*Server, event.Bus) {
	t.Helper()
	logger.Discard()

	bus := event.NewMemoryBus()
	log := NewBattleLog(10, time.Hour)
	log.Register(bus)
	return NewServer(Options{Addr: "127.0.0.1:0", Version: "1.2.3"}, log), bus
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "127.0.0.1:9999"
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_Healthz(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}

func TestServer_Version(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/version")
	require.Equal(t, http.StatusOK, rec.Code)

	var info VersionInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.True(t, strings.HasPrefix(info.GoVersion, "go"))
}

func TestServer_Metrics(t *testing.T) {
	s, _ := newTestServer(t)

	get(t, s, "/healthz")
	rec := get(t, s, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestServer_SwaggerDoc(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Middle-earth status API", doc.Info.Title)
	assert.Contains(t, doc.Paths, "/api/v1/battles")
	assert.Contains(t, doc.Paths, "/api/v1/battles/{id}")
	assert.Contains(t, doc.Paths, "/healthz")
}

func TestServer_Battles(t *testing.T) {
	s, bus := newTestServer(t)
	publishBattle(t, bus, "b1", domain.OutcomeVictory, "Orc")
	publishBattle(t, bus, "b2", domain.OutcomeFled)

	t.Run("list", func(t *testing.T) {
		rec := get(t, s, "/api/v1/battles")
		require.Equal(t, http.StatusOK, rec.Code)

		var body BattlesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 2, body.Totals.Battles)
		require.Len(t, body.Battles, 2)
		assert.Equal(t, "b2", body.Battles[0].ID)
	})

	t.Run("limit", func(t *testing.T) {
		rec := get(t, s, "/api/v1/battles?limit=1")
		require.Equal(t, http.StatusOK, rec.Code)

		var body BattlesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Battles, 1)
	})

	t.Run("bad limit", func(t *testing.T) {
		rec := get(t, s, "/api/v1/battles?limit=many")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("one", func(t *testing.T) {
		rec := get(t, s, "/api/v1/battles/b1")
		require.Equal(t, http.StatusOK, rec.Code)

		var b BattleSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
		assert.Equal(t, domain.OutcomeVictory, b.Outcome)
		assert.Equal(t, []string{"Orc"}, b.MonstersSlain)
	})

	t.Run("missing", func(t *testing.T) {
		rec := get(t, s, "/api/v1/battles/nope")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, ErrMsgBattleNotFound, body.Error)
	})
}

func TestServer_DefaultBattleLog(t *testing.T) {
	s := NewServer(Options{Addr: ":0"}, nil)
	require.NotNil(t, s.Battles())
	assert.Equal(t, ":0", s.Addr())

	rec := get(t, s, "/version")
	var info VersionInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, Version, info.Version)
}

func TestServer_StartStop(t *testing.T) {
	logger.Discard()
	// the expirable LRU runs its own janitor goroutine for the life of the log
	battles := NewBattleLog(10, time.Hour)

	leaktest.CheckNoGoroutineLeak(t, func() {
		s := NewServer(Options{Addr: "127.0.0.1:0"}, battles)

		errc := make(chan error, 1)
		go func() { errc <- s.Start() }()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, s.Stop(ctx))
		require.NoError(t, <-errc)
	})
}

func TestServer_EventStream(t *testing.T) {
	logger.Discard()
	hub := sse.NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	sse.NewSubscriber(hub, bus).Subscribe()

	s := NewServer(Options{Addr: ":0", Events: hub}, nil)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/v1/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	r := bufio.NewReader(resp.Body)
	nextEventName := func() string {
		for {
			line, err := r.ReadString('\n')
			require.NoError(t, err)
			if name, ok := strings.CutPrefix(strings.TrimSpace(line), "event: "); ok {
				return name
			}
		}
	}

	require.Equal(t, sse.EventTypeConnected, nextEventName())
	publishBattle(t, bus, "b1", domain.OutcomeVictory)
	assert.Equal(t, string(event.BattleStarted), nextEventName())
	assert.Equal(t, string(event.BattleEnded), nextEventName())
}

func TestServer_NoEventStreamWithoutHub(t *testing.T) {
	s, _ := newTestServer(t)
	assert.Equal(t, http.StatusNotFound, get(t, s, "/api/v1/events").Code)
}
