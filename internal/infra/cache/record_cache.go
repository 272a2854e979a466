package cache

import (
	"context"
	"time"

	"tripfair/internal/usecase/commands"

	gocache "github.com/patrickmn/go-cache"
)

// RecordCache is a TTL read cache over the property/override repositories.
// Readers may observe data up to the TTL stale; Flush is called by the
// administrative collaborator right after any write. go-cache is safe for
// concurrent use, so in-flight readers see either the pre- or
// post-invalidation record, never a torn one.
//
// Only successful reads are cached: a NOT_FOUND or a store failure is
// re-attempted on the next call.
type RecordCache struct {
	properties commands.PropertyRepository
	overrides  commands.OverrideRepository
	entries    *gocache.Cache
}

func NewRecordCache(
	properties commands.PropertyRepository,
	overrides commands.OverrideRepository,
	ttl time.Duration,
) *RecordCache {
	return &RecordCache{
		properties: properties,
		overrides:  overrides,
		entries:    gocache.New(ttl, 2*ttl),
	}
}

func (c *RecordCache) FindByID(ctx context.Context, id string) (*commands.PropertySnapshot, error) {
	key := "property:" + id
	if cached, ok := c.entries.Get(key); ok {
		return cached.(*commands.PropertySnapshot), nil
	}

	snapshot, err := c.properties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.entries.SetDefault(key, snapshot)
	return snapshot, nil
}

func (c *RecordCache) FindRoom(ctx context.Context, propertyID, roomID string) (*commands.RoomSnapshot, error) {
	key := "room:" + propertyID + ":" + roomID
	if cached, ok := c.entries.Get(key); ok {
		return cached.(*commands.RoomSnapshot), nil
	}

	snapshot, err := c.properties.FindRoom(ctx, propertyID, roomID)
	if err != nil {
		return nil, err
	}
	c.entries.SetDefault(key, snapshot)
	return snapshot, nil
}

func (c *RecordCache) FindByPropertyID(ctx context.Context, propertyID string) (*commands.OverrideSnapshot, error) {
	key := "override:" + propertyID
	if cached, ok := c.entries.Get(key); ok {
		return cached.(*commands.OverrideSnapshot), nil
	}

	snapshot, err := c.overrides.FindByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	c.entries.SetDefault(key, snapshot)
	return snapshot, nil
}

// Invalidate drops every cached record.
func (c *RecordCache) Invalidate() {
	c.entries.Flush()
}
