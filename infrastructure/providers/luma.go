package providers

import (
	"context"
	"fmt"
	"time"

	"video-studio/domain/dto"
	"video-studio/domain/model"
)

// LumaProvider integrates Luma Dream Machine. The public API is not
// generally available, so the adapter always reports a locally generated
// correlation id with an estimated completion time.
type LumaProvider struct {
	now func() time.Time
}

func NewLumaProvider() *LumaProvider {
	return &LumaProvider{now: time.Now}
}

func (p *LumaProvider) Generate(_ context.Context, _ string, config *dto.GenerationConfig, job model.VideoJob) (model.VideoJob, error) {
	return job.WithProcessing(25, map[string]interface{}{
		"generationId":  fmt.Sprintf("luma_%d", p.now().UnixMilli()),
		"estimatedTime": config.MaxDuration * 30,
	}), nil
}
