package reply_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/flowreach/flowreach/pkg/service/reply"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gt"
)

type mockLLMSession struct {
	generateContentFn func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error)
}

func (m *mockLLMSession) GenerateContent(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
	if m.generateContentFn != nil {
		return m.generateContentFn(ctx, input...)
	}
	return &gollem.Response{Texts: []string{"ok"}}, nil
}

func (m *mockLLMSession) GenerateStream(ctx context.Context, input ...gollem.Input) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (m *mockLLMSession) Generate(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (*gollem.Response, error) {
	return m.GenerateContent(ctx, input...)
}

func (m *mockLLMSession) Stream(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (m *mockLLMSession) History() (*gollem.History, error) {
	return nil, nil
}

func (m *mockLLMSession) AppendHistory(history *gollem.History) error {
	return nil
}

func (m *mockLLMSession) CountToken(ctx context.Context, input ...gollem.Input) (int, error) {
	return 0, nil
}

type mockLLMClient struct {
	newSessionFn func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error)
}

func (m *mockLLMClient) NewSession(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
	if m.newSessionFn != nil {
		return m.newSessionFn(ctx, options...)
	}
	return &mockLLMSession{}, nil
}

func (m *mockLLMClient) GenerateEmbedding(ctx context.Context, dimension int, input []string) ([][]float64, error) {
	return nil, nil
}

func testKB() *model.KB {
	return &model.KB{
		Profile: model.BusinessProfile{
			Name: "Acme Coffee",
			Tone: "warm",
		},
		Items: []model.KBItem{
			{
				ID:          "c1",
				Name:        "Summer Blend",
				Description: "seasonal beans promotion",
				Keywords:    []string{"beans", "promo"},
				Sources:     []string{model.KBItemSourceCampaign},
			},
		},
	}
}

func TestAnswer(t *testing.T) {
	var capturedInputs []gollem.Input
	llm := &mockLLMClient{
		newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			return &mockLLMSession{
				generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
					capturedInputs = input
					return &gollem.Response{Texts: []string{"  We have a Summer Blend promo.  "}}, nil
				},
			}, nil
		},
	}

	svc := reply.New(llm)
	out := gt.R1(svc.Answer(t.Context(), reply.Input{
		UserText: "any beans promo?",
		KB:       testKB(),
	})).NoError(t)

	gt.Value(t, out.Reply).Equal("We have a Summer Blend promo.")
	gt.Array(t, out.Sources).Length(1)
	gt.Value(t, out.Sources[0]).Equal(types.CampaignID("c1"))

	gt.Array(t, capturedInputs).Length(1)
	text, ok := capturedInputs[0].(gollem.Text)
	gt.B(t, ok).True()
	gt.Value(t, string(text)).Equal("any beans promo?")
}

func TestAnswerNotConfigured(t *testing.T) {
	svc := reply.New(nil)
	_, err := svc.Answer(t.Context(), reply.Input{UserText: "hello"})
	gt.Error(t, err)
	gt.B(t, errors.Is(err, reply.ErrNotConfigured)).True()
}

func TestAnswerSessionFailure(t *testing.T) {
	llm := &mockLLMClient{
		newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			return nil, goerr.New("boom")
		},
	}

	svc := reply.New(llm)
	_, err := svc.Answer(t.Context(), reply.Input{UserText: "hello", KB: testKB()})
	gt.Error(t, err)
}

func TestSystemPromptSections(t *testing.T) {
	svc := reply.New(&mockLLMClient{})

	t.Run("persona uses profile name and tone", func(t *testing.T) {
		prompt := reply.BuildSystemPrompt(svc, &model.BusinessProfile{Name: "Acme Coffee", Tone: "warm"}, nil, "")
		gt.B(t, strings.Contains(prompt, "Acme Coffee")).True()
		gt.B(t, strings.Contains(prompt, "warm tone")).True()
	})

	t.Run("fallbacks when profile is empty", func(t *testing.T) {
		prompt := reply.BuildSystemPrompt(svc, &model.BusinessProfile{}, nil, "")
		gt.B(t, strings.Contains(prompt, "our business")).True()
		gt.B(t, strings.Contains(prompt, reply.DefaultTone)).True()
	})

	t.Run("about section appears only when set", func(t *testing.T) {
		withAbout := reply.BuildSystemPrompt(svc, &model.BusinessProfile{About: "local roastery"}, nil, "")
		gt.B(t, strings.Contains(withAbout, "Business about: local roastery")).True()

		withoutAbout := reply.BuildSystemPrompt(svc, &model.BusinessProfile{}, nil, "")
		gt.B(t, strings.Contains(withoutAbout, "Business about:")).False()
	})

	t.Run("memory titles are listed", func(t *testing.T) {
		memories := []*model.MemoryRecord{
			{Title: "prefers decaf"},
			{Title: "asked about delivery"},
		}
		prompt := reply.BuildSystemPrompt(svc, &model.BusinessProfile{}, memories, "")
		gt.B(t, strings.Contains(prompt, "Recent user memory:\n- prefers decaf\n- asked about delivery")).True()
	})

	t.Run("context block is appended last", func(t *testing.T) {
		prompt := reply.BuildSystemPrompt(svc, &model.BusinessProfile{}, nil, "- Summer Blend: seasonal beans")
		gt.B(t, strings.HasSuffix(prompt, "Context:\n- Summer Blend: seasonal beans")).True()
	})

	t.Run("no memories means no memory section", func(t *testing.T) {
		prompt := reply.BuildSystemPrompt(svc, &model.BusinessProfile{}, nil, "")
		gt.B(t, strings.Contains(prompt, "Recent user memory")).False()
	})
}

func TestTruncate(t *testing.T) {
	gt.Value(t, reply.Truncate("hello", 10)).Equal("hello")
	gt.Value(t, reply.Truncate("hello", 3)).Equal("hel")
	gt.Value(t, reply.Truncate("日本語のテキスト", 3)).Equal("日本語")
}

func TestWithDefaultTone(t *testing.T) {
	svc := reply.New(&mockLLMClient{}, reply.WithDefaultTone("cheerful"))
	prompt := reply.BuildSystemPrompt(svc, &model.BusinessProfile{}, nil, "")
	gt.B(t, strings.Contains(prompt, "cheerful tone")).True()
}
