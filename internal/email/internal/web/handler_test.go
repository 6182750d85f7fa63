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

package web

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/ecodeclub/mailtriage/internal/email/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/email/internal/errs"
	"github.com/ecodeclub/mailtriage/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	processed int
	res       domain.Email
}

func (f *fakeService) Process(ctx context.Context, r io.Reader) (domain.Email, error) {
	f.processed++
	return f.res, nil
}

func (f *fakeService) List(ctx context.Context, offset, limit int) ([]domain.Email, int64, error) {
	return nil, 0, nil
}

func (f *fakeService) Detail(ctx context.Context, id int64) (domain.Email, error) {
	return f.res, nil
}

func TestHandler_Process(t *testing.T) {
	testCases := []struct {
		name     string
		filename string

		wantCode    int
		wantBizCode int
		wantCalled  int
	}{
		{
			name:       "eml 文件正常处理",
			filename:   "query.eml",
			wantCode:   200,
			wantCalled: 1,
		},
		{
			name:        "后缀不对直接拒绝",
			filename:    "notes.txt",
			wantCode:    200,
			wantBizCode: errs.InvalidFile.Code,
		},
		{
			name:        "大小写不敏感",
			filename:    "QUERY.EML",
			wantCode:    200,
			wantCalled:  1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeService{res: domain.Email{
				Id:      1,
				Subject: "Need a loan",
			}}
			gin.SetMode(gin.ReleaseMode)
			server := gin.New()
			NewHandler(svc).PublicRoutes(server)

			var buf bytes.Buffer
			w := multipart.NewWriter(&buf)
			fw, err := w.CreateFormFile("file", tc.filename)
			require.NoError(t, err)
			_, err = fw.Write([]byte("From: alice@example.com\r\n\r\nhello"))
			require.NoError(t, err)
			require.NoError(t, w.Close())

			req, err := http.NewRequest(http.MethodPost, "/email/process", &buf)
			require.NoError(t, err)
			req.Header.Set("Content-Type", w.FormDataContentType())
			recorder := test.NewJSONResponseRecorder[Email]()
			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantCode, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantBizCode, res.Code)
			assert.Equal(t, tc.wantCalled, svc.processed)
			if tc.wantCalled > 0 {
				assert.Equal(t, "Need a loan", res.Data.Subject)
			}
		})
	}
}
