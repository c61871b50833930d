//go:build unit

package rulecache_test

import (
	"context"
	"testing"
	"time"

	"court-booking/internal/domain/pricing"
	"court-booking/internal/infra/rulecache"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const activeRulesKey = "pricing_rules:active"

func TestCache_Get(t *testing.T) {
	ctx := context.Background()
	ruleID := uuid.MustParse("0b8f2c1d-9a4e-4f6b-8c3d-1e5a7b9d2f40")

	t.Run("hit decodes rules with their conditions", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := rulecache.New(client, time.Minute)

		payload := `[{"id":"` + ruleID.String() + `","name":"Evening Peak","type":"peak_hour","multiplier":1.3,"conditions":{"startHour":17,"endHour":21}}]`
		mock.ExpectGet(activeRulesKey).SetVal(payload)

		rules, err := cache.Get(ctx)
		require.NoError(t, err)
		require.Len(t, rules, 1)

		assert.Equal(t, ruleID, rules[0].ID)
		assert.Equal(t, "Evening Peak", rules[0].Name)
		assert.Equal(t, pricing.RulePeakHour, rules[0].Type)
		assert.Equal(t, 1.3, rules[0].Multiplier)
		assert.Equal(t, pricing.PeakHourConditions{StartHour: 17, EndHour: 21}, rules[0].Conditions)
		assert.True(t, rules[0].IsActive)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent key is a cache miss", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := rulecache.New(client, time.Minute)

		mock.ExpectGet(activeRulesKey).RedisNil()

		_, err := cache.Get(ctx)
		require.ErrorIs(t, err, rulecache.ErrCacheMiss)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupt payload is an error, not a miss", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := rulecache.New(client, time.Minute)

		mock.ExpectGet(activeRulesKey).SetVal("not json")

		_, err := cache.Get(ctx)
		require.Error(t, err)
		assert.NotErrorIs(t, err, rulecache.ErrCacheMiss)
	})
}

func TestCache_Set(t *testing.T) {
	ctx := context.Background()
	ruleID := uuid.MustParse("0b8f2c1d-9a4e-4f6b-8c3d-1e5a7b9d2f40")

	t.Run("stores the rule set under the shared key with a TTL", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := rulecache.New(client, time.Minute)

		payload := `[{"id":"` + ruleID.String() + `","name":"Evening Peak","type":"peak_hour","multiplier":1.3,"conditions":{"startHour":17,"endHour":21}}]`
		mock.ExpectSet(activeRulesKey, []byte(payload), time.Minute).SetVal("OK")

		err := cache.Set(ctx, []pricing.Rule{
			{
				ID:         ruleID,
				Name:       "Evening Peak",
				Type:       pricing.RulePeakHour,
				Multiplier: 1.3,
				Conditions: pricing.PeakHourConditions{StartHour: 17, EndHour: 21},
				IsActive:   true,
			},
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("round trip preserves the rule", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := rulecache.New(client, time.Minute)

		original := pricing.Rule{
			ID:         ruleID,
			Name:       "Weekend Rate",
			Type:       pricing.RuleWeekend,
			Multiplier: 1.2,
			Conditions: pricing.WeekendConditions{Days: []string{"Saturday", "Sunday"}},
			IsActive:   true,
		}

		payload := `[{"id":"` + ruleID.String() + `","name":"Weekend Rate","type":"weekend","multiplier":1.2,"conditions":{"days":["Saturday","Sunday"]}}]`
		mock.ExpectSet(activeRulesKey, []byte(payload), time.Minute).SetVal("OK")
		require.NoError(t, cache.Set(ctx, []pricing.Rule{original}))

		mock.ExpectGet(activeRulesKey).SetVal(payload)
		rules, err := cache.Get(ctx)
		require.NoError(t, err)
		require.Len(t, rules, 1)
		assert.Equal(t, original, rules[0])
	})
}

func TestCache_Invalidate(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := rulecache.New(client, time.Minute)

	mock.ExpectDel(activeRulesKey).SetVal(1)

	require.NoError(t, cache.Invalidate(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
