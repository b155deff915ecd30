package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kdarko/sikaflow/internal/pkg/database"
)

// onlineVendorsKey is the Redis set of vendor ids currently taking work.
const onlineVendorsKey = "vendors:online"

// PresenceRepo tracks vendor availability in Redis.
type PresenceRepo struct {
	redis *database.RedisClient
}

// NewPresenceRepository creates a new vendor presence repository
func NewPresenceRepository(redis *database.RedisClient) *PresenceRepo {
	return &PresenceRepo{redis: redis}
}

// SetOnline adds or removes the vendor from the online set.
func (r *PresenceRepo) SetOnline(ctx context.Context, vendorID int64, online bool) error {
	member := strconv.FormatInt(vendorID, 10)

	var err error
	if online {
		err = r.redis.SAdd(ctx, onlineVendorsKey, member)
	} else {
		err = r.redis.SRem(ctx, onlineVendorsKey, member)
	}
	if err != nil {
		return fmt.Errorf("failed to update vendor presence: %w", err)
	}

	return nil
}

// IsOnline reports whether the vendor is in the online set.
func (r *PresenceRepo) IsOnline(ctx context.Context, vendorID int64) (bool, error) {
	online, err := r.redis.SIsMember(ctx, onlineVendorsKey, strconv.FormatInt(vendorID, 10))
	if err != nil {
		return false, fmt.Errorf("failed to check vendor presence: %w", err)
	}

	return online, nil
}
