package db

import (
	"log"
	"time"

	"github.com/dgraph-io/ristretto"

	"fintrack-server/src/models"
)

// The auth middleware verifies on every request that the token's user still
// exists. Those lookups are memoized here so the hot path usually skips the
// database.
var userCache *ristretto.Cache

const userCacheTTL = 5 * time.Minute

func InitCache() {
	var err error
	userCache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func GetCachedUser(userID string) (*models.User, bool) {
	if userCache == nil {
		return nil, false
	}
	value, found := userCache.Get(userID)
	if !found {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func SetCachedUser(user *models.User) {
	if userCache == nil {
		return
	}
	userCache.SetWithTTL(user.ID, user, 1, userCacheTTL)
}

func DropCachedUser(userID string) {
	if userCache == nil {
		return
	}
	userCache.Del(userID)
}
