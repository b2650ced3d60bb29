package cache

import "time"

// LayeredCache chains the memory and disk layers for analysis reports.
// Reads check memory first and promote disk hits; writes land on disk
// first so an interrupted run never leaves a report in memory only.
type LayeredCache struct {
	memory Cache
	disk   Cache
}

// NewLayeredCache builds both layers. The memory sweep interval tracks
// the memory TTL so expired reports do not linger between sweeps.
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	sweep := memoryTTL
	if sweep <= 0 {
		sweep = time.Minute
	}
	return &LayeredCache{
		memory: NewMemoryCache(memoryTTL, sweep),
		disk:   NewDiskCache(diskDir, diskTTL),
	}
}

// Get retrieves a report, promoting a disk hit into the memory layer
// with the default memory TTL
func (c *LayeredCache) Get(key string) ([]byte, bool) {
	if val, found := c.memory.Get(key); found {
		return val, true
	}

	val, found := c.disk.Get(key)
	if !found {
		return nil, false
	}
	_ = c.memory.Set(key, val, 0)
	return val, true
}

// Set stores a report in both layers, disk first
func (c *LayeredCache) Set(key string, value []byte, ttl time.Duration) error {
	if err := c.disk.Set(key, value, ttl); err != nil {
		return err
	}
	return c.memory.Set(key, value, ttl)
}

// Delete removes a report from both layers
func (c *LayeredCache) Delete(key string) error {
	memErr := c.memory.Delete(key)
	if err := c.disk.Delete(key); err != nil {
		return err
	}
	return memErr
}

// Clear drops both layers
func (c *LayeredCache) Clear() error {
	if err := c.memory.Clear(); err != nil {
		return err
	}
	return c.disk.Clear()
}
