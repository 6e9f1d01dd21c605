package usecase

import (
	"context"
	"fmt"
	"strings"

	"video-studio/infrastructure/logger"
)

// IScriptClient is the completion surface the script generator needs.
type IScriptClient interface {
	Configured() bool
	Complete(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error)
}

// IScriptUsecase generates video scripts and thumbnail concepts.
type IScriptUsecase interface {
	GenerateScript(ctx context.Context, topic string, duration int) (string, error)
	GenerateThumbnailPrompts(ctx context.Context, title string) ([]string, error)
}

type ScriptUsecase struct {
	client IScriptClient
}

func NewScriptUsecase(client IScriptClient) IScriptUsecase {
	return &ScriptUsecase{client: client}
}

// GenerateScript produces a narration script for the topic. Without an API
// key configured it falls back to a structural template so the studio stays
// usable offline.
func (u *ScriptUsecase) GenerateScript(ctx context.Context, topic string, duration int) (string, error) {
	if duration <= 0 {
		duration = 60
	}

	if !u.client.Configured() {
		logger.GetLogger().Warn("OpenAI API key not configured - returning template script")
		return templateScript(topic, duration), nil
	}

	system := "You are a professional video script writer. Write engaging, concise scripts for short-form video content."
	user := fmt.Sprintf(
		"Write a %d-second video script about: %s. Include a hook in the first 3 seconds, clear sections, and a call to action at the end.",
		duration, topic,
	)
	script, err := u.client.Complete(ctx, system, user, 1000, 0.7)
	if err != nil {
		return "", fmt.Errorf("failed to generate script: %w", err)
	}
	return script, nil
}

// GenerateThumbnailPrompts produces image-generation prompts for thumbnail
// candidates. The completion is split on blank lines, one prompt per concept.
func (u *ScriptUsecase) GenerateThumbnailPrompts(ctx context.Context, title string) ([]string, error) {
	if !u.client.Configured() {
		return []string{
			fmt.Sprintf("Bold text overlay '%s' on a vibrant gradient background, high contrast", title),
			fmt.Sprintf("Close-up expressive face reacting to '%s', bright studio lighting", title),
			fmt.Sprintf("Minimalist illustration representing '%s', flat design, striking colors", title),
		}, nil
	}

	system := "You generate image prompts for video thumbnails. Return exactly three prompts separated by blank lines."
	user := fmt.Sprintf("Video title: %s", title)
	raw, err := u.client.Complete(ctx, system, user, 500, 0.9)
	if err != nil {
		return nil, fmt.Errorf("failed to generate thumbnail prompts: %w", err)
	}

	prompts := []string{}
	for _, block := range strings.Split(raw, "\n\n") {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			prompts = append(prompts, trimmed)
		}
	}
	return prompts, nil
}

func templateScript(topic string, duration int) string {
	ctaAt := duration - 5
	if ctaAt < 0 {
		ctaAt = 0
	}
	return fmt.Sprintf(`[HOOK - 0:00]
Did you know %s could change everything? Stick around.

[INTRO - 0:03]
Today we're diving into %s.

[MAIN - 0:10]
Here are the three things you need to know about %s.

[CTA - 0:%02d]
If this helped, like and subscribe for more.`, topic, topic, topic, ctaAt)
}
