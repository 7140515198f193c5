package database

import (
	"context"
	"fmt"
	"time"
	"wisma/config"

	"github.com/valkey-io/valkey-go"
)

type CacheClient valkey.Client

// Valkey database index layout. Logical separation per cache category.
const (
	// GENERAL_CACHE_INDEX (DB 0) - miscellaneous caching
	GENERAL_CACHE_INDEX = iota

	// SESSION_CACHE_INDEX (DB 1) - refresh-token sessions, revocable per token ID
	SESSION_CACHE_INDEX
)

type Cache struct {
	General CacheClient
	Session CacheClient
}

func (s *DB) initializeCacheDB(config config.Config) error {
	log := s.log.Function("initializeCacheDB")
	log.Info("initializing cache database")

	address := config.DatabaseCacheAddress
	port := config.DatabaseCachePort
	if address == "" || port == 0 {
		return log.ErrMsg("failed to initialize cache database: address or port is empty")
	}

	var cacheDB Cache

	var err error
	cacheDB.General, err = valkey.NewClient(
		valkey.ClientOption{
			InitAddress: []string{fmt.Sprintf("%s:%d", address, port)},
			SelectDB:    GENERAL_CACHE_INDEX,
		},
	)
	if err != nil {
		return log.Err("failed to create general valkey client", err)
	}

	cacheDB.Session, err = valkey.NewClient(
		valkey.ClientOption{
			InitAddress: []string{fmt.Sprintf("%s:%d", address, port)},
			SelectDB:    SESSION_CACHE_INDEX,
		},
	)
	if err != nil {
		return log.Err("failed to create session valkey client", err)
	}

	s.Cache = cacheDB
	return nil
}

// CacheSet stores a string value with a TTL.
func CacheSet(ctx context.Context, cache CacheClient, key, value string, ttl time.Duration) error {
	return cache.Do(ctx, cache.B().Set().Key(key).Value(value).Ex(ttl).Build()).Error()
}

// CacheGet retrieves a string value. Missing keys return valkey.Nil errors.
func CacheGet(ctx context.Context, cache CacheClient, key string) (string, error) {
	return cache.Do(ctx, cache.B().Get().Key(key).Build()).ToString()
}

// CacheDelete removes a key.
func CacheDelete(ctx context.Context, cache CacheClient, key string) error {
	return cache.Do(ctx, cache.B().Del().Key(key).Build()).Error()
}
