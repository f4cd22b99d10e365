package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
)

// AccountIdentityCacheRepository caches immutable account identity fields
// (owner, external number, type) in Redis. Balance and status are never
// cached: balance must always come fresh from the store, and status can
// change administratively.
type AccountIdentityCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached identities
}

// NewAccountIdentityCacheRepository creates a new repository instance with optional TTL
func NewAccountIdentityCacheRepository(client *redis.Client, expiration time.Duration) *AccountIdentityCacheRepository {
	return &AccountIdentityCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches a cached account identity by account id.
func (r *AccountIdentityCacheRepository) Get(ctx context.Context, accountID uuid.UUID) (*models.AccountIdentity, error) {
	key := fmt.Sprintf("account_identity:%s", accountID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("account identity not found in cache for %s", accountID)
		}
		return nil, err
	}

	var identity models.AccountIdentity
	if err := json.Unmarshal([]byte(val), &identity); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", identity,
		"error", nil,
	)

	return &identity, nil
}

// Set caches an account identity in Redis with expiration.
func (r *AccountIdentityCacheRepository) Set(ctx context.Context, identity models.AccountIdentity) error {
	key := fmt.Sprintf("account_identity:%s", identity.AccountID)

	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"identity", identity,
		"result", "ok",
		"error", err,
	)

	return err
}
