// Package reply generates Global AI answers grounded on the knowledge
// base, the business profile and recent user memory.
package reply

import (
	"context"
	"fmt"
	"strings"

	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/flowreach/flowreach/pkg/service/kb"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

const (
	// maxInputChars caps both the system prompt and the user text
	// before the completion call
	maxInputChars = 4000

	// DefaultTone is used when the business profile has no tone
	DefaultTone = "friendly and professional"
)

// ErrNotConfigured is returned when no completion service is
// available. Callers surface it as a distinct failure instead of a
// generic server error.
var ErrNotConfigured = goerr.New("AI completion service is not configured")

// Input is one answer request
type Input struct {
	UserText string
	KB       *model.KB
	Memories []*model.MemoryRecord
}

// Output is the generated reply with the KB item IDs used as context
type Output struct {
	Reply   string
	Sources []types.CampaignID
}

// Service generates grounded replies
type Service interface {
	Answer(ctx context.Context, input Input) (*Output, error)
}

// client implements Service
type client struct {
	llmClient   gollem.LLMClient
	defaultTone string
}

// Option is a functional option for client configuration
type Option func(*client)

// WithDefaultTone overrides the fallback reply tone
func WithDefaultTone(tone string) Option {
	return func(c *client) {
		if tone != "" {
			c.defaultTone = tone
		}
	}
}

// New creates a reply service. A nil LLM client is allowed: Answer
// then fails with ErrNotConfigured so the caller can surface a typed
// error.
func New(llmClient gollem.LLMClient, opts ...Option) Service {
	c := &client{
		llmClient:   llmClient,
		defaultTone: DefaultTone,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Answer retrieves context for the user text, assembles the system
// prompt and calls the completion service.
func (c *client) Answer(ctx context.Context, input Input) (*Output, error) {
	if c.llmClient == nil {
		return nil, goerr.Wrap(ErrNotConfigured, "cannot answer")
	}

	retrieved := kb.Retrieve(input.UserText, kb.DefaultTopK, input.KB)

	var profile model.BusinessProfile
	if input.KB != nil {
		profile = input.KB.Profile
	}

	systemPrompt := truncate(c.buildSystemPrompt(&profile, input.Memories, retrieved.Text), maxInputChars)
	userText := truncate(input.UserText, maxInputChars)

	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(systemPrompt),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(userText))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate reply")
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.New("empty completion response")
	}

	sources := make([]types.CampaignID, len(retrieved.Items))
	for i, item := range retrieved.Items {
		sources[i] = item.ID
	}

	return &Output{
		Reply:   strings.TrimSpace(resp.Texts[0]),
		Sources: sources,
	}, nil
}

// buildSystemPrompt concatenates the persona line, the grounding
// instructions and the optional about/memory/context sections.
// Optional sections are omitted when empty.
func (c *client) buildSystemPrompt(profile *model.BusinessProfile, memories []*model.MemoryRecord, contextBlock string) string {
	name := profile.Name
	if name == "" {
		name = "our business"
	}
	tone := profile.Tone
	if tone == "" {
		tone = c.defaultTone
	}

	sections := []string{
		fmt.Sprintf("You are the virtual assistant for %s. Respond in a %s tone.", name, tone),
		"Answer using only the provided context. If the context does not cover the question, ask a clarifying question instead of guessing.",
		"When your answer draws on a product or campaign from the context, mention it by name.",
	}

	if profile.About != "" {
		sections = append(sections, "Business about: "+profile.About)
	}

	if len(memories) > 0 {
		var sb strings.Builder
		sb.WriteString("Recent user memory:")
		for _, m := range memories {
			fmt.Fprintf(&sb, "\n- %s", m.Title)
		}
		sections = append(sections, sb.String())
	}

	if contextBlock != "" {
		sections = append(sections, "Context:\n"+contextBlock)
	}

	return strings.Join(sections, "\n")
}

// truncate caps s at limit characters
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
