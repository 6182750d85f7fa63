package mistral

import (
	"context"
	"errors"
	"math"

	"github.com/ecodeclub/mailtriage/internal/ai/internal/domain"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultModel = "mistral-7b-instruct"

// Handler 通过 OpenAI 兼容接口调用 Mistral 系列模型，
// 所有兼容 /chat/completions 的推理服务都可以用这个 Handler 接入
type Handler struct {
	client *openai.Client
}

func NewHandler(baseURL string, apikey string) *Handler {
	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apikey),
	)
	return &Handler{
		client: client,
	}
}

func (h *Handler) Name() string {
	return "mistral"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	completion, err := h.client.Chat.Completions.New(ctx, h.buildParams(req))
	if err != nil {
		return domain.LLMResponse{}, err
	}
	if len(completion.Choices) == 0 {
		return domain.LLMResponse{}, errors.New("模型没有返回任何候选")
	}
	tokens := completion.Usage.TotalTokens
	amt := math.Ceil(float64(tokens*req.Config.Price) / float64(1000))
	return domain.LLMResponse{
		Tokens: tokens,
		Amount: int64(amt),
		Answer: completion.Choices[0].Message.Content,
	}, nil
}

func (h *Handler) buildParams(req domain.LLMRequest) openai.ChatCompletionNewParams {
	model := req.Config.Model
	if model == "" {
		model = defaultModel
	}
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.Config.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.Config.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.Prompt()))
	params := openai.ChatCompletionNewParams{
		Messages: openai.F(messages),
		Model:    openai.F(openai.ChatModel(model)),
	}
	if req.Config.Temperature > 0 {
		params.Temperature = openai.F(req.Config.Temperature)
	}
	if req.Config.TopP > 0 {
		params.TopP = openai.F(req.Config.TopP)
	}
	return params
}
