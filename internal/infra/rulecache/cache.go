// Package rulecache caches the active pricing-rule set in Redis so every
// quote and booking does not rescan the pricing_rules table. Writes to the
// rules invalidate the key; the next read repopulates it.
package rulecache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"court-booking/internal/domain/pricing"
	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const activeRulesKey = "pricing_rules:active"

// ErrCacheMiss reports that the key is not present. Callers fall back to
// the store and repopulate.
var ErrCacheMiss = errors.New("rule cache miss")

// cachedRule is the Redis wire form of one rule. Conditions are stored in
// the same document shape as the pricing_rules.conditions column.
type cachedRule struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Multiplier float64         `json:"multiplier"`
	Conditions json.RawMessage `json:"conditions"`
}

type Cache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func New(client redis.UniversalClient, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context) ([]pricing.Rule, error) {
	raw, err := c.client.Get(ctx, activeRulesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, errs.Wrap(err, "failed to read rule cache")
	}

	var cached []cachedRule
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, errs.Wrap(err, "failed to decode cached rules")
	}

	rules := make([]pricing.Rule, 0, len(cached))
	for _, cr := range cached {
		ruleType := pricing.RuleType(cr.Type)
		conditions, err := pricing.DecodeConditions(ruleType, cr.Conditions)
		if err != nil {
			return nil, errs.Wrap(err, "failed to decode cached rule conditions")
		}
		rules = append(rules, pricing.Rule{
			ID:         cr.ID,
			Name:       cr.Name,
			Type:       ruleType,
			Multiplier: cr.Multiplier,
			Conditions: conditions,
			IsActive:   true,
		})
	}
	return rules, nil
}

func (c *Cache) Set(ctx context.Context, rules []pricing.Rule) error {
	cached := make([]cachedRule, 0, len(rules))
	for _, r := range rules {
		conditions, err := pricing.EncodeConditions(r.Conditions)
		if err != nil {
			return errs.Wrap(err, "failed to encode rule conditions")
		}
		cached = append(cached, cachedRule{
			ID:         r.ID,
			Name:       r.Name,
			Type:       string(r.Type),
			Multiplier: r.Multiplier,
			Conditions: conditions,
		})
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return errs.Wrap(err, "failed to encode cached rules")
	}

	if err := c.client.Set(ctx, activeRulesKey, raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write rule cache")
	}
	return nil
}

func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, activeRulesKey).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate rule cache")
	}
	return nil
}
