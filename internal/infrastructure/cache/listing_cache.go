package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"ewastehub/internal/domain/entity"
)

const listingTTL = 1 * time.Hour

// ListingCache is a read-through cache for listing-by-id lookups. Entries are
// invalidated on every mutation, so a hit always reflects the last local write.
type ListingCache struct {
	client *redis.Client
}

func NewListingCache(addr string) (*ListingCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return &ListingCache{client: client}, nil
}

func (c *ListingCache) GetEWaste(ctx context.Context, id string) (*entity.EWasteListing, error) {
	data, err := c.client.Get(ctx, "ewaste:"+id).Bytes()
	if err == redis.Nil {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, err
	}
	var listing entity.EWasteListing
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

func (c *ListingCache) SetEWaste(ctx context.Context, listing *entity.EWasteListing) error {
	data, err := json.Marshal(listing)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "ewaste:"+listing.ID, data, listingTTL).Err()
}

func (c *ListingCache) DeleteEWaste(ctx context.Context, id string) error {
	return c.client.Del(ctx, "ewaste:"+id).Err()
}

func (c *ListingCache) GetBulk(ctx context.Context, id string) (*entity.BulkListing, error) {
	data, err := c.client.Get(ctx, "bulk:"+id).Bytes()
	if err == redis.Nil {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, err
	}
	var listing entity.BulkListing
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

func (c *ListingCache) SetBulk(ctx context.Context, listing *entity.BulkListing) error {
	data, err := json.Marshal(listing)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "bulk:"+listing.ID, data, listingTTL).Err()
}

func (c *ListingCache) DeleteBulk(ctx context.Context, id string) error {
	return c.client.Del(ctx, "bulk:"+id).Err()
}

func (c *ListingCache) Close() error {
	return c.client.Close()
}
