package persistence

import (
	"context"
	"errors"
	"fmt"

	"video-studio/domain/model"
	"video-studio/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ErrJobTerminal is returned when a save would mutate a completed or errored job.
var ErrJobTerminal = errors.New("job already in terminal state")

const (
	jobDatabase   = "video_studio"
	jobCollection = "jobs"
)

// JobRepositoryMongo is the durable Mongo-backed job store.
type JobRepositoryMongo struct {
	client *mongo.Client
}

func NewJobRepositoryMongo(client *mongo.Client) repository.IJob {
	return &JobRepositoryMongo{client: client}
}

func (r *JobRepositoryMongo) collection() *mongo.Collection {
	return r.client.Database(jobDatabase).Collection(jobCollection)
}

func (r *JobRepositoryMongo) Save(ctx context.Context, job model.VideoJob) error {
	existing, err := r.Get(ctx, job.ID)
	if err != nil {
		return err
	}
	if existing != nil && existing.Terminal() {
		return ErrJobTerminal
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection().ReplaceOne(ctx, bson.D{{Key: "_id", Value: job.ID}}, job, opts); err != nil {
		return fmt.Errorf("failed to save job %s: %w", job.ID, err)
	}
	return nil
}

func (r *JobRepositoryMongo) Get(ctx context.Context, id string) (*model.VideoJob, error) {
	var job model.VideoJob
	err := r.collection().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&job)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job %s: %w", id, err)
	}
	return &job, nil
}

func (r *JobRepositoryMongo) GetByTaskID(ctx context.Context, taskID string) (*model.VideoJob, error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "output.taskId", Value: taskID}},
		bson.D{{Key: "output.generationId", Value: taskID}},
	}}}

	var job model.VideoJob
	err := r.collection().FindOne(ctx, filter).Decode(&job)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job by task id %s: %w", taskID, err)
	}
	return &job, nil
}
