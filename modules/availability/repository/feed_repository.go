package repository

import (
	"context"
	"encoding/json"

	"timegrid/core/cache"
	"timegrid/core/constants"
	"timegrid/core/logger"
	"timegrid/modules/availability/entity"
)

// AvailabilityFeed is the change-feed collaborator: a Redis pub/sub
// channel per event carrying fine-grained cell patches. Replaying a
// patch is a cell-level merge on the receiving side, never a
// whole-matrix replace, so a remote update cannot clobber a local
// mutation in flight.
type AvailabilityFeed struct {
	cache *cache.Cache
}

func NewAvailabilityFeed(c *cache.Cache) *AvailabilityFeed {
	return &AvailabilityFeed{cache: c}
}

type AvailabilityFeedInterface interface {
	Publish(ctx context.Context, eventID, origin string, entries []entity.AvailabilityEntry) error
	Subscribe(eventID, origin string, apply func([]entity.AvailabilityEntry)) (func(), error)
}

type feedMessage struct {
	Origin  string                     `json:"origin"`
	Entries []entity.AvailabilityEntry `json:"entries"`
}

func feedChannel(eventID string) string {
	return constants.RedisChannelAvailabilityFeed + eventID
}

func (f *AvailabilityFeed) Publish(ctx context.Context, eventID, origin string, entries []entity.AvailabilityEntry) error {
	payload, err := json.Marshal(feedMessage{Origin: origin, Entries: entries})
	if err != nil {
		return err
	}
	if err := f.cache.Client().Publish(ctx, feedChannel(eventID), payload).Err(); err != nil {
		logger.Error("AvailabilityFeed:Publish", err)
		return err
	}
	return nil
}

// Subscribe delivers every remote patch for the event to apply, skipping
// messages this instance published itself. The returned function
// cancels the subscription.
func (f *AvailabilityFeed) Subscribe(eventID, origin string, apply func([]entity.AvailabilityEntry)) (func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	sub := f.cache.Client().Subscribe(ctx, feedChannel(eventID))

	// Force the subscription to be established before returning.
	if _, err := sub.Receive(ctx); err != nil {
		cancel()
		_ = sub.Close()
		return nil, err
	}

	go func() {
		for msg := range sub.Channel() {
			var fm feedMessage
			if err := json.Unmarshal([]byte(msg.Payload), &fm); err != nil {
				logger.Warn("AvailabilityFeed:Subscribe: bad payload", "error", err)
				continue
			}
			if fm.Origin == origin || len(fm.Entries) == 0 {
				continue
			}
			apply(fm.Entries)
		}
	}()

	unsubscribe := func() {
		cancel()
		if err := sub.Close(); err != nil {
			logger.Warn("AvailabilityFeed:Unsubscribe", "error", err)
		}
	}
	return unsubscribe, nil
}
