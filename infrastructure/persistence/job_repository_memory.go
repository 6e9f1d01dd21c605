package persistence

import (
	"context"
	"sync"

	"video-studio/domain/model"
	"video-studio/domain/repository"
)

// JobRepositoryMemory is the in-process job store used when Mongo is not
// available. State is lost on restart, matching the original demo behavior.
type JobRepositoryMemory struct {
	mu   sync.RWMutex
	jobs map[string]model.VideoJob
}

func NewJobRepositoryMemory() repository.IJob {
	return &JobRepositoryMemory{jobs: make(map[string]model.VideoJob)}
}

func (r *JobRepositoryMemory) Save(_ context.Context, job model.VideoJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.jobs[job.ID]; ok && existing.Terminal() {
		return ErrJobTerminal
	}
	r.jobs[job.ID] = job
	return nil
}

func (r *JobRepositoryMemory) Get(_ context.Context, id string) (*model.VideoJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if job, ok := r.jobs[id]; ok {
		return &job, nil
	}
	return nil, nil
}

func (r *JobRepositoryMemory) GetByTaskID(_ context.Context, taskID string) (*model.VideoJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, job := range r.jobs {
		if job.Output == nil {
			continue
		}
		if id, ok := job.Output["taskId"].(string); ok && id == taskID {
			j := job
			return &j, nil
		}
		if id, ok := job.Output["generationId"].(string); ok && id == taskID {
			j := job
			return &j, nil
		}
	}
	return nil, nil
}
