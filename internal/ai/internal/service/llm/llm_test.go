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

package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/mailtriage/internal/ai/internal/domain"
	hdlmocks "github.com/ecodeclub/mailtriage/internal/ai/internal/service/llm/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLLMService_Invoke(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := hdlmocks.NewMockHandler(ctrl)
	root.EXPECT().Handle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
			assert.Equal(t, domain.BizEmailTriage, req.Biz)
			return domain.LLMResponse{
				Tokens: 100,
				Amount: 2,
				Answer: "ok",
			}, nil
		})

	svc := NewLLMService(root)
	resp, err := svc.Invoke(context.Background(), domain.LLMRequest{
		Biz: domain.BizEmailTriage,
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Answer)
	assert.Equal(t, int64(100), resp.Tokens)
}

func TestLLMService_Invoke_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := hdlmocks.NewMockHandler(ctrl)
	mockErr := errors.New("模拟失败")
	root.EXPECT().Handle(gomock.Any(), gomock.Any()).Return(domain.LLMResponse{}, mockErr)

	svc := NewLLMService(root)
	_, err := svc.Invoke(context.Background(), domain.LLMRequest{})
	assert.ErrorIs(t, err, mockErr)
}
