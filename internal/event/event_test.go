package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/middleearth/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got []Event

	bus.Subscribe(MonsterSlain, func(ctx context.Context, evt Event) error {
		got = append(got, evt)
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), NewMonsterSlainEvent("b-1", "Orc", 4)))
	require.NoError(t, bus.Publish(context.Background(), NewPlayerLevelUpEvent("Frodo", 1, 2)), "unsubscribed types are ignored")

	require.Len(t, got, 1)
	assert.Equal(t, EventSchemaVersion, got[0].Version)
	assert.Equal(t, "b-1", got[0].GetMetadataValue(MetadataKeyBattleID))

	payload, err := DecodePayload[MonsterSlainPayloadV1](got[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, MonsterSlainPayloadV1{BattleID: "b-1", Monster: "Orc", Experience: 4}, payload)
}

func TestMemoryBus_HandlersRunInOrder(t *testing.T) {
	bus := NewMemoryBus()
	var order []int

	bus.Subscribe(BattleEnded, func(context.Context, Event) error { order = append(order, 1); return nil })
	bus.Subscribe(BattleEnded, func(context.Context, Event) error { order = append(order, 2); return nil })

	require.NoError(t, bus.Publish(context.Background(), NewBattleEndedEvent(BattleEndedPayloadV1{Outcome: domain.OutcomeVictory})))
	assert.Equal(t, []int{1, 2}, order)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	called := false

	bus.Subscribe(ItemFound, func(context.Context, Event) error { return errors.New("handler error") })
	bus.Subscribe(ItemFound, func(context.Context, Event) error { called = true; return nil })

	err := bus.Publish(context.Background(), NewItemFoundEvent("b-2", "Sting", "high", true))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler error")
	assert.True(t, called, "a failing handler does not stop the rest")
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{"player": "Sam", "old_level": 3, "new_level": 4}

	payload, err := DecodePayload[PlayerLevelUpPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, PlayerLevelUpPayloadV1{Player: "Sam", OldLevel: 3, NewLevel: 4}, payload)
}

func TestNopBus(t *testing.T) {
	var bus Bus = NopBus{}
	bus.Subscribe(BattleStarted, func(context.Context, Event) error {
		t.Fatal("nop bus must not dispatch")
		return nil
	})
	assert.NoError(t, bus.Publish(context.Background(), NewBattleStartedEvent(BattleStartedPayloadV1{})))
}
