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

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/service/llm"
	"github.com/lithammer/shortuuid/v4"
)

// jsonExpr 从 LLM 的回答里抠出第一个 JSON 对象，
// 模型经常在 JSON 前后加解释性文字或者 ```json 这种围栏
const jsonExpr = `\{[^{}]*\}`

var jsonRegexp = regexp.MustCompile(jsonExpr)

var ErrInvalidAnswer = fmt.Errorf("不符合预期的大模型响应")

// TriageOption 一个可选的分类类目
type TriageOption struct {
	Category    string
	RequestType string
}

//go:generate mockgen -source=./triage.go -destination=../mocks/triage.mock.go -package=aimocks -typed=true TriageService
type TriageService interface {
	// Classify 对邮件内容做分类并生成摘要
	Classify(ctx context.Context, uid int64, content string, options []TriageOption) (domain.Triage, error)
}

type triageService struct {
	llmSvc llm.Service
}

func NewTriageService(llmSvc llm.Service) TriageService {
	return &triageService{
		llmSvc: llmSvc,
	}
}

func (s *triageService) Classify(ctx context.Context, uid int64, content string, options []TriageOption) (domain.Triage, error) {
	tid := shortuuid.New()
	resp, err := s.llmSvc.Invoke(ctx, domain.LLMRequest{
		Uid: uid,
		Tid: tid,
		Biz: domain.BizEmailTriage,
		Input: []string{
			renderOptions(options),
			content,
		},
	})
	if err != nil {
		return domain.Triage{}, err
	}
	triage, err := parseTriage(resp.Answer)
	if err != nil {
		return domain.Triage{}, err
	}
	triage.Amount = resp.Amount
	return triage, nil
}

// renderOptions 把类目渲染成 "- Category: RequestType" 的列表
func renderOptions(options []TriageOption) string {
	lines := slice.Map(options, func(idx int, src TriageOption) string {
		return fmt.Sprintf("- %s: %s", src.Category, src.RequestType)
	})
	return strings.Join(lines, "\n")
}

func parseTriage(answer string) (domain.Triage, error) {
	raw := jsonRegexp.FindString(answer)
	if raw == "" {
		return domain.Triage{}, fmt.Errorf("%w: 回答里没有 JSON", ErrInvalidAnswer)
	}
	var triage domain.Triage
	if err := json.Unmarshal([]byte(raw), &triage); err != nil {
		return domain.Triage{}, fmt.Errorf("%w: %s", ErrInvalidAnswer, err.Error())
	}
	if triage.Category == "" {
		triage.Category = domain.UnknownCategory
	}
	if triage.RequestType == "" {
		triage.RequestType = domain.UnknownCategory
	}
	if triage.Summary == "" {
		triage.Summary = domain.NoSummary
	}
	return triage, nil
}
