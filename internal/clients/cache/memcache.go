package cache

import (
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/grocery-bot/internal/entity/currency"
	"max.ks1230/grocery-bot/internal/logger"
)

var (
	defaultBase = 10

	ErrMiss = errors.New("cache miss")
)

type MemcacheClient struct {
	client *memcache.Client
	ttl    int32
}

type config interface {
	Hosts() []string
	TTL() int32
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{client: mc, ttl: config.TTL()}, mc.Ping()
}

func formatKey(userID int64, curr currency.Code) string {
	return "budget:" + strconv.FormatInt(userID, defaultBase) + ":" + curr.String()
}

func (mc *MemcacheClient) CacheBudget(userID int64, curr currency.Code, text string) error {
	logger.Info("cache budget", zap.Int64("userID", userID), zap.Stringer("currency", curr))
	return mc.client.Set(&memcache.Item{
		Key:        formatKey(userID, curr),
		Value:      []byte(text),
		Expiration: mc.ttl,
	})
}

func (mc *MemcacheClient) GetBudget(userID int64, curr currency.Code) (string, error) {
	item, err := mc.client.Get(formatKey(userID, curr))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return "", ErrMiss
	}
	if err != nil {
		return "", err
	}
	logger.Info("budget served from cache", zap.Int64("userID", userID), zap.Stringer("currency", curr))
	return string(item.Value), nil
}

// InvalidateBudget drops the cached text for every currency.
func (mc *MemcacheClient) InvalidateBudget(userID int64) error {
	logger.Info("invalidate cache", zap.Int64("userID", userID))

	for _, curr := range currency.Codes {
		err := mc.client.Delete(formatKey(userID, curr))
		if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			return err
		}
	}
	return nil
}
