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
	"testing"

	"github.com/ecodeclub/mailtriage/internal/catalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	saved []domain.RequestType
	list  []domain.RequestType
}

func (f *fakeRepo) List(ctx context.Context) ([]domain.RequestType, error) {
	return f.list, nil
}

func (f *fakeRepo) Save(ctx context.Context, rt domain.RequestType) (int64, error) {
	f.saved = append(f.saved, rt)
	return int64(len(f.saved)), nil
}

func TestService_Save(t *testing.T) {
	testCases := []struct {
		name     string
		rt       domain.RequestType
		wantErr  error
		wantSave *domain.RequestType
	}{
		{
			name: "正常保存",
			rt:   domain.RequestType{Category: "Loan Services", Name: "Apply for Loan"},
			wantSave: &domain.RequestType{
				Category: "Loan Services",
				Name:     "Apply for Loan",
			},
		},
		{
			name: "去掉首尾空格",
			rt:   domain.RequestType{Category: "  Loan Services ", Name: " Apply for Loan\n"},
			wantSave: &domain.RequestType{
				Category: "Loan Services",
				Name:     "Apply for Loan",
			},
		},
		{
			name:    "类目为空",
			rt:      domain.RequestType{Category: "  ", Name: "Apply for Loan"},
			wantErr: ErrInvalidRequestType,
		},
		{
			name:    "请求类型为空",
			rt:      domain.RequestType{Category: "Loan Services"},
			wantErr: ErrInvalidRequestType,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := NewService(repo)
			_, err := svc.Save(context.Background(), tc.rt)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, repo.saved)
				return
			}
			require.NoError(t, err)
			require.Len(t, repo.saved, 1)
			assert.Equal(t, *tc.wantSave, repo.saved[0])
		})
	}
}

func TestService_List(t *testing.T) {
	repo := &fakeRepo{list: []domain.RequestType{
		{Id: 1, Category: "Account Management", Name: "Close Account"},
	}}
	svc := NewService(repo)
	rts, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, rts, 1)
	assert.Equal(t, "Close Account", rts[0].Name)
}
