package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"ridgeai/internal/models"
)

const (
	geminiFlashModel = "gemini-2.5-flash"
	geminiProModel   = "gemini-3-pro-preview"
	openRouterModel  = "x-ai/grok-4.1-fast"

	openRouterBaseURL = "https://openrouter.ai/api/v1"

	// Thinking budget used when deep analysis is enabled on the gemini path.
	deepAnalysisThinkingBudget int32 = 32768
)

// Config selects the provider and generation parameters for one client.
type Config struct {
	Provider     string // models.ProviderGemini | models.ProviderOpenRouter
	APIKey       string
	DeepAnalysis bool // gemini only: pro model + thinking budget
}

// Image is one uploaded fingerprint as raw bytes plus its MIME type.
type Image struct {
	Name string
	MIME string
	Data []byte
}

// Analysis is the raw provider output for one comparison call.
type Analysis struct {
	Content     string
	TotalTokens int64
}

// ForensicClient wraps a provider chat model behind one Analyze call.
type ForensicClient struct {
	chatModel model.BaseChatModel
	provider  string
	modelName string
}

// New builds the chat model for the configured provider. The gemini path
// goes through the genai SDK; the openrouter path reuses the OpenAI-compatible
// chat completions surface with OpenRouter's base URL.
func New(ctx context.Context, cfg Config) (*ForensicClient, error) {
	switch cfg.Provider {
	case models.ProviderGemini:
		return newGeminiClient(ctx, cfg)
	case models.ProviderOpenRouter:
		return newOpenRouterClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown provider: %q", cfg.Provider)
	}
}

func newGeminiClient(ctx context.Context, cfg Config) (*ForensicClient, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("Error creating genai client: %v", err)
		return nil, err
	}

	geminiCfg := &gemini.Config{
		Client: gc,
		Model:  geminiFlashModel,
	}
	if cfg.DeepAnalysis {
		geminiCfg.Model = geminiProModel
		geminiCfg.ThinkingConfig = &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(deepAnalysisThinkingBudget),
		}
	}

	cm, err := gemini.NewChatModel(ctx, geminiCfg)
	if err != nil {
		log.Printf("Error creating gemini chat model: %v", err)
		return nil, err
	}

	return &ForensicClient{chatModel: cm, provider: cfg.Provider, modelName: geminiCfg.Model}, nil
}

func newOpenRouterClient(ctx context.Context, cfg Config) (*ForensicClient, error) {
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  cfg.APIKey,
		BaseURL: openRouterBaseURL,
		Model:   openRouterModel,
	})
	if err != nil {
		log.Printf("Error creating openrouter chat model: %v", err)
		return nil, err
	}

	return &ForensicClient{chatModel: cm, provider: cfg.Provider, modelName: openRouterModel}, nil
}

// ModelName reports the provider model this client generates with.
func (c *ForensicClient) ModelName() string {
	return c.modelName
}

// Analyze sends both images plus the instruction prompt in a single user
// message and returns the raw textual response. Exactly one call per
// invocation, no retries.
func (c *ForensicClient) Analyze(ctx context.Context, prompt string, img1, img2 Image) (*Analysis, error) {
	msg := &schema.Message{
		Role: schema.User,
		MultiContent: []schema.ChatMessagePart{
			imagePart(img1),
			imagePart(img2),
			{Type: schema.ChatMessagePartTypeText, Text: prompt},
		},
	}

	out, err := c.chatModel.Generate(ctx, []*schema.Message{msg})
	if err != nil {
		return nil, classifyProviderError(err)
	}
	if out == nil || out.Content == "" {
		return nil, fmt.Errorf("%w: empty response from %s", ErrMalformedResponse, c.provider)
	}

	analysis := &Analysis{Content: out.Content}
	if out.ResponseMeta != nil && out.ResponseMeta.Usage != nil {
		analysis.TotalTokens = int64(out.ResponseMeta.Usage.TotalTokens)
	}
	return analysis, nil
}

func imagePart(img Image) schema.ChatMessagePart {
	dataURL := fmt.Sprintf("data:%s;base64,%s", img.MIME, base64.StdEncoding.EncodeToString(img.Data))
	return schema.ChatMessagePart{
		Type: schema.ChatMessagePartTypeImageURL,
		ImageURL: &schema.ChatMessageImageURL{
			URL:      dataURL,
			MIMEType: img.MIME,
			Detail:   schema.ImageURLDetailAuto,
		},
	}
}
