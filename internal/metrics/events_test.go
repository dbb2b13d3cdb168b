package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/middleearth/internal/domain"
	"github.com/osse101/middleearth/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()

	victories := BattlesTotal.WithLabelValues(string(domain.ContextRandom), string(domain.OutcomeVictory))
	beforeVictories := testutil.ToFloat64(victories)
	beforeXP := testutil.ToFloat64(ExperienceGained)
	beforeOrcs := testutil.ToFloat64(MonstersSlain.WithLabelValues("Orc"))
	beforeLevels := testutil.ToFloat64(LevelUps)
	beforeFound := testutil.ToFloat64(ItemsFound.WithLabelValues("elite", "false"))

	require.NoError(t, bus.Publish(ctx, event.NewMonsterSlainEvent("b", "Orc", 4)))
	require.NoError(t, bus.Publish(ctx, event.NewPlayerLevelUpEvent("Frodo", 2, 4)))
	require.NoError(t, bus.Publish(ctx, event.NewItemFoundEvent("b", "Anduril", "elite", false)))
	require.NoError(t, bus.Publish(ctx, event.NewBattleEndedEvent(event.BattleEndedPayloadV1{
		BattleID:         "b",
		Context:          domain.ContextRandom,
		Outcome:          domain.OutcomeVictory,
		Rounds:           3,
		ExperienceGained: 12,
		MonstersSlain:    2,
	})))

	assert.Equal(t, beforeVictories+1, testutil.ToFloat64(victories))
	assert.Equal(t, beforeXP+12, testutil.ToFloat64(ExperienceGained))
	assert.Equal(t, beforeOrcs+1, testutil.ToFloat64(MonstersSlain.WithLabelValues("Orc")))
	assert.Equal(t, beforeLevels+2, testutil.ToFloat64(LevelUps))
	assert.Equal(t, float64(4), testutil.ToFloat64(PlayerLevel))
	assert.Equal(t, beforeFound+1, testutil.ToFloat64(ItemsFound.WithLabelValues("elite", "false")))
}

func TestEventMetricsCollector_BadPayload(t *testing.T) {
	errs := EventHandlerErrors.WithLabelValues(string(event.MonsterSlain))
	before := testutil.ToFloat64(errs)

	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{
		Type:    event.MonsterSlain,
		Payload: make(chan int),
	})

	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(errs))
}

func TestMiddleware_RecordsRequests(t *testing.T) {
	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/healthz", "418")
	before := testutil.ToFloat64(counter)

	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Zero(t, testutil.ToFloat64(HTTPRequestsInFlight))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/battles/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/battles/{id}", "200")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/battles/"+id, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
}
