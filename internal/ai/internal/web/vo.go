package web

import "github.com/ecodeclub/mailtriage/internal/ai/internal/domain"

type ConfigRequest struct {
	Config Config `json:"config"`
}

type ConfigDetailReq struct {
	Biz string `json:"biz"`
}

type Config struct {
	Id             int64   `json:"id"`
	Biz            string  `json:"biz"`
	MaxInput       int     `json:"maxInput"`
	Model          string  `json:"model"`
	Price          int64   `json:"price"`
	Temperature    float64 `json:"temperature"`
	TopP           float64 `json:"topP"`
	SystemPrompt   string  `json:"systemPrompt"`
	PromptTemplate string  `json:"promptTemplate"`
	Utime          int64   `json:"utime"`
}

func newConfig(c domain.BizConfig) Config {
	return Config{
		Id:             c.Id,
		Biz:            c.Biz,
		MaxInput:       c.MaxInput,
		Model:          c.Model,
		Price:          c.Price,
		Temperature:    c.Temperature,
		TopP:           c.TopP,
		SystemPrompt:   c.SystemPrompt,
		PromptTemplate: c.PromptTemplate,
		Utime:          c.Utime,
	}
}
