// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package biz

import (
	"context"
	"strings"
	"testing"

	"github.com/ecodeclub/mailtriage/internal/ai/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/service/llm/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailTriageBizHandlerBuilder(t *testing.T) {
	var gotPrompt string
	next := handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		gotPrompt = req.Prompt()
		return domain.LLMResponse{Answer: "ok"}, nil
	})
	h := NewEmailTriageBizHandlerBuilder().Next(next)

	req := domain.LLMRequest{
		Biz:   domain.BizEmailTriage,
		Input: []string{"- Loan Services: Apply for Loan", "I want a loan"},
		Config: domain.BizConfig{
			PromptTemplate: "categories:\n%s\nquery: %s",
			MaxInput:       100,
		},
	}
	_, err := h.Handle(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "categories:\n- Loan Services: Apply for Loan\nquery: I want a loan", gotPrompt)
}

func TestEmailTriageBizHandlerBuilder_Truncate(t *testing.T) {
	var gotPrompt string
	next := handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		gotPrompt = req.Prompt()
		return domain.LLMResponse{}, nil
	})
	h := NewEmailTriageBizHandlerBuilder().Next(next)

	req := domain.LLMRequest{
		Input: []string{"- A: B", strings.Repeat("啊", 50)},
		Config: domain.BizConfig{
			PromptTemplate: "%s|%s",
			MaxInput:       10,
		},
	}
	_, err := h.Handle(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "- A: B|"+strings.Repeat("啊", 10), gotPrompt)
}

func TestEmailTriageBizHandlerBuilder_BadInput(t *testing.T) {
	h := NewEmailTriageBizHandlerBuilder().Next(handler.HandleFunc(
		func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
			return domain.LLMResponse{}, nil
		}))
	_, err := h.Handle(context.Background(), domain.LLMRequest{Input: []string{"only one"}})
	assert.Error(t, err)
}

func TestFacadeHandler_UnknownBiz(t *testing.T) {
	f := NewHandler(map[string]handler.Handler{})
	_, err := f.Handle(context.Background(), domain.LLMRequest{Biz: "nope"})
	assert.ErrorIs(t, err, ErrUnknownBiz)
}
