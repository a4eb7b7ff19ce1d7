package infra_redis_session

import (
	"time"

	"github.com/go-redis/redis"
)

type Driver struct {
	client *redis.Client
	prefix string
}

func New(
	client *redis.Client,
	prefix string,
) *Driver {
	return &Driver{
		client: client,
		prefix: prefix,
	}
}

func (d *Driver) Set(key string, value string, ttl time.Duration) error {
	return d.client.Set(d.fullKey(key), value, ttl).Err()
}

// Get returns an empty value for missing or expired keys.
func (d *Driver) Get(key string) (string, error) {
	val, err := d.client.Get(d.fullKey(key)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (d *Driver) Delete(key string) error {
	return d.client.Del(d.fullKey(key)).Err()
}

func (d *Driver) fullKey(key string) string {
	if d.prefix != "" {
		return d.prefix + ":" + key
	}
	return key
}
