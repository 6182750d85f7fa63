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
	"errors"
	"testing"

	"github.com/ecodeclub/mailtriage/internal/ai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLLM 直接返回预设的回答
type fakeLLM struct {
	answer string
	err    error
	// 记录最后一次请求，方便断言
	lastReq domain.LLMRequest
}

func (f *fakeLLM) Invoke(_ context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return domain.LLMResponse{}, f.err
	}
	return domain.LLMResponse{Answer: f.answer, Amount: 3, Tokens: 100}, nil
}

func TestTriageService_Classify(t *testing.T) {
	testCases := []struct {
		name    string
		answer  string
		want    domain.Triage
		wantErr error
	}{
		{
			name:   "标准JSON回答",
			answer: `{"request_type": "Loan Services", "sub_request_type": "Apply for Loan", "summary": "客户想申请贷款"}`,
			want: domain.Triage{
				Category:    "Loan Services",
				RequestType: "Apply for Loan",
				Summary:     "客户想申请贷款",
				Amount:      3,
			},
		},
		{
			name:   "JSON前后有解释文字",
			answer: "Sure, here is the result:\n```json\n{\"request_type\": \"Transaction Issues\", \"sub_request_type\": \"Failed Transaction\", \"summary\": \"transfer failed\"}\n``` hope it helps",
			want: domain.Triage{
				Category:    "Transaction Issues",
				RequestType: "Failed Transaction",
				Summary:     "transfer failed",
				Amount:      3,
			},
		},
		{
			name:   "缺字段用兜底值",
			answer: `{"request_type": "Account Management"}`,
			want: domain.Triage{
				Category:    "Account Management",
				RequestType: domain.UnknownCategory,
				Summary:     domain.NoSummary,
				Amount:      3,
			},
		},
		{
			name:    "没有JSON",
			answer:  "I cannot classify this email.",
			wantErr: ErrInvalidAnswer,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewTriageService(&fakeLLM{answer: tc.answer})
			got, err := svc.Classify(context.Background(), 123, "my card was stolen", []TriageOption{
				{Category: "Credit Card Services", RequestType: "Lost or Stolen Card"},
			})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTriageService_Classify_RequestShape(t *testing.T) {
	llm := &fakeLLM{answer: `{"request_type": "a", "sub_request_type": "b", "summary": "c"}`}
	svc := NewTriageService(llm)
	_, err := svc.Classify(context.Background(), 7, "body text", []TriageOption{
		{Category: "Account Management", RequestType: "Close Account"},
		{Category: "Loan Services", RequestType: "Apply for Loan"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BizEmailTriage, llm.lastReq.Biz)
	assert.Equal(t, int64(7), llm.lastReq.Uid)
	require.Len(t, llm.lastReq.Input, 2)
	assert.Equal(t, "- Account Management: Close Account\n- Loan Services: Apply for Loan", llm.lastReq.Input[0])
	assert.Equal(t, "body text", llm.lastReq.Input[1])
	assert.NotEmpty(t, llm.lastReq.Tid)
}

func TestTriageService_Classify_LLMError(t *testing.T) {
	svc := NewTriageService(&fakeLLM{err: errors.New("平台挂了")})
	_, err := svc.Classify(context.Background(), 1, "x", nil)
	assert.Error(t, err)
}
