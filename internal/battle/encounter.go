package battle

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/middleearth/internal/domain"
	"github.com/osse101/middleearth/internal/event"
	"github.com/osse101/middleearth/internal/item"
	"github.com/osse101/middleearth/internal/logger"
)

// MaybeEncounter rolls the player's location battle probability and fights a random battle on success.
// The bool result reports whether a battle took place.
func (e *Engine) MaybeEncounter(ctx context.Context, p Combatant) (Result, bool, error) {
	loc := p.Location()
	if loc == nil {
		return Result{}, false, domain.ErrNoLocation
	}

	roll := e.rng.Float64()
	triggered := roll < loc.BattleProbability()
	logger.FromContext(ctx).Debug(LogMsgEncounterRoll,
		"location", loc.Name(),
		"roll", roll,
		"probability", loc.BattleProbability(),
		"triggered", triggered)
	if !triggered {
		return Result{}, false, nil
	}

	res, err := e.Run(ctx, p, domain.ContextRandom, nil)
	return res, true, err
}

// findItems rolls each unique tier once against the experience earned this battle
func (e *Engine) findItems(b *battle) {
	if e.pools == nil {
		return
	}
	log := logger.FromContext(b.ctx)

	for _, pool := range e.pools.All() {
		if pool.Tier == item.TierLow && b.player.Level() >= e.config.LowLevelCap {
			log.Debug(LogMsgItemFindGated, "level", b.player.Level(), "cap", e.config.LowLevelCap)
			continue
		}

		probability := pool.Probability(b.result.ExperienceGained)
		roll := e.rng.Float64()
		log.Debug(LogMsgItemFindRoll, "tier", pool.Tier, "roll", roll, "probability", probability)
		if roll >= probability {
			continue
		}

		it, ok := pool.Pick(e.rng)
		if !ok {
			continue
		}
		kept := b.player.AddToInventory(it)
		if kept {
			pool.Take(it)
			e.say(b.ctx, fmt.Sprintf(MsgItemFound, it.Name))
		} else {
			e.say(b.ctx, fmt.Sprintf(MsgItemTooHeavy, it.Name))
		}

		b.result.ItemsFound = append(b.result.ItemsFound, FoundItem{Item: it, Tier: pool.Tier, Kept: kept})
		e.publish(b.ctx, event.NewItemFoundEvent(b.result.ID, it.Name, string(pool.Tier), kept))
	}
}

func isInvalidAction(err error) bool {
	return errors.Is(err, domain.ErrInvalidAction)
}
