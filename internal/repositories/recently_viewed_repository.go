package repositories

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const defaultRecentLimit = 20

// RecentlyViewedRepository keeps a bounded most-recent-first list of listing
// ids per user in redis. It is a presentation collaborator and has no bearing
// on ranking.
type RecentlyViewedRepository struct {
	RDB   *redis.Client
	Limit int
}

func recentKey(userID int) string {
	return fmt.Sprintf("recent:user:%d", userID)
}

func (r *RecentlyViewedRepository) limit() int {
	if r.Limit > 0 {
		return r.Limit
	}
	return defaultRecentLimit
}

// Record moves the listing to the front of the user's list, dropping the
// oldest entry once the list is full.
func (r *RecentlyViewedRepository) Record(ctx context.Context, userID, listingID int) error {
	key := recentKey(userID)
	member := strconv.Itoa(listingID)

	pipe := r.RDB.TxPipeline()
	pipe.LRem(ctx, key, 0, member)
	pipe.LPush(ctx, key, member)
	pipe.LTrim(ctx, key, 0, int64(r.limit())-1)
	_, err := pipe.Exec(ctx)
	return err
}

// List returns the user's recently viewed listing ids, most recent first.
func (r *RecentlyViewedRepository) List(ctx context.Context, userID int) ([]int, error) {
	members, err := r.RDB.LRange(ctx, recentKey(userID), 0, int64(r.limit())-1).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(members))
	for _, member := range members {
		id, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
