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
	"fmt"
	"unicode/utf8"

	"github.com/ecodeclub/mailtriage/internal/ai/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/service/llm/handler"
)

// EmailTriageBizHandlerBuilder 负责拼接邮件分类的 prompt。
// Input[0] 是可选类目列表，Input[1] 是邮件正文（含附件文本）。
type EmailTriageBizHandlerBuilder struct {
}

func NewEmailTriageBizHandlerBuilder() *EmailTriageBizHandlerBuilder {
	return &EmailTriageBizHandlerBuilder{}
}

func (h *EmailTriageBizHandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		if len(req.Input) != 2 {
			return domain.LLMResponse{}, fmt.Errorf("输入数量不对，预期 2，实际 %d", len(req.Input))
		}
		catalog := req.Input[0]
		content := req.Input[1]
		contentLen := utf8.RuneCountInString(content)
		if req.Config.MaxInput > 0 && contentLen > req.Config.MaxInput {
			// 截断而不是拒绝，邮件带长附件是常态
			content = string([]rune(content)[:req.Config.MaxInput])
		}
		req.SetPrompt(fmt.Sprintf(req.Config.PromptTemplate, catalog, content))
		return next.Handle(ctx, req)
	})
}
