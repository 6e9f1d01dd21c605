package cache

import (
	"context"
	"encoding/json"
	"time"

	"video-studio/domain/model"
	"video-studio/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

const jobKeyPrefix = "job:"

// IJobCache is the cache-aside layer in front of the job store.
type IJobCache interface {
	Set(ctx context.Context, job model.VideoJob)
	Get(ctx context.Context, id string) (*model.VideoJob, error)
}

// JobCache caches job records in Redis with a short TTL; status polling hits
// this before the durable store.
type JobCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewJobCache(client *redis.Client) IJobCache {
	return &JobCache{client: client, ttl: 10 * time.Minute}
}

func (c *JobCache) Set(ctx context.Context, job model.VideoJob) {
	payload, err := json.Marshal(job)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while marshalling job for cache")
		return
	}
	if err := c.client.Set(ctx, jobKeyPrefix+job.ID, payload, c.ttl).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Error while caching job")
	}
}

func (c *JobCache) Get(ctx context.Context, id string) (*model.VideoJob, error) {
	payload, err := c.client.Get(ctx, jobKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var job model.VideoJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
