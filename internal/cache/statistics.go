package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"reputation/config"
	"reputation/internal/domain"
)

const allCommunitiesField = "all"

// StatisticsCache keeps computed provider statistics in Redis, one key per
// provider and community filter. Every entry is scoped to the provider's
// generation counter: Invalidate bumps the counter, so older entries become
// unreachable at once and a Set computed before the bump is dropped.
// A nil *StatisticsCache is a valid cache that never hits.
type StatisticsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("не удалось подключиться к Redis: %w", err)
	}

	return client, nil
}

func NewStatisticsCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *StatisticsCache {
	return &StatisticsCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func generationKey(providerID int64) string {
	return fmt.Sprintf("stats:provider:%d:gen", providerID)
}

func entryKey(providerID, generation int64, communityID *int64) string {
	return fmt.Sprintf("stats:provider:%d:g%d:%s", providerID, generation, communityField(communityID))
}

func communityField(communityID *int64) string {
	if communityID == nil {
		return allCommunitiesField
	}
	return "community:" + strconv.FormatInt(*communityID, 10)
}

type generationReader interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readGeneration(ctx context.Context, r generationReader, providerID int64) (int64, error) {
	gen, err := r.Get(ctx, generationKey(providerID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Get returns nil stats without error on a miss. The returned generation must
// be passed back to Set for the computed value.
func (c *StatisticsCache) Get(ctx context.Context, providerID int64, communityID *int64) (*domain.ProviderStatistics, int64, error) {
	if c == nil || c.client == nil {
		return nil, 0, nil
	}

	gen, err := readGeneration(ctx, c.client, providerID)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка чтения поколения кэша статистики: %w", err)
	}

	raw, err := c.client.Get(ctx, entryKey(providerID, gen, communityID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, gen, nil
		}
		return nil, 0, fmt.Errorf("ошибка чтения статистики из кэша: %w", err)
	}

	var stats domain.ProviderStatistics
	if err := json.Unmarshal(raw, &stats); err != nil {
		c.logger.Warn("поврежденная запись статистики в кэше",
			zap.Int64("providerID", providerID),
			zap.Error(err))
		return nil, gen, nil
	}

	return &stats, gen, nil
}

// Set stores stats only while the provider is still at generation gen.
func (c *StatisticsCache) Set(ctx context.Context, providerID int64, communityID *int64, gen int64, stats *domain.ProviderStatistics) error {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("ошибка сериализации статистики: %w", err)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGeneration(ctx, tx, providerID)
		if err != nil {
			return err
		}
		if current != gen {
			c.logger.Debug("статистика устарела до записи в кэш",
				zap.Int64("providerID", providerID),
				zap.Int64("generation", gen),
				zap.Int64("current", current))
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, entryKey(providerID, gen, communityID), data, c.ttl)
			return nil
		})
		return err
	}, generationKey(providerID))
	if errors.Is(err, redis.TxFailedErr) {
		c.logger.Debug("кэш статистики сброшен во время записи", zap.Int64("providerID", providerID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("ошибка записи статистики в кэш: %w", err)
	}

	return nil
}

func (c *StatisticsCache) Invalidate(ctx context.Context, providerID int64) error {
	if c == nil || c.client == nil {
		return nil
	}

	if err := c.client.Incr(ctx, generationKey(providerID)).Err(); err != nil {
		return fmt.Errorf("ошибка сброса кэша статистики: %w", err)
	}
	return nil
}
