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

//go:build e2e

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mailtriage/internal/catalog"
	"github.com/ecodeclub/mailtriage/internal/catalog/internal/web"
	"github.com/ecodeclub/mailtriage/internal/test"
	testioc "github.com/ecodeclub/mailtriage/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	m := catalog.InitModule(s.db, testioc.InitCache())

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	m.Hdl.PublicRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("TRUNCATE TABLE `request_types`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestSave() {
	testCases := []struct {
		name string
		req  web.RequestType

		wantCode    int
		wantBizCode int
	}{
		{
			name: "新增成功",
			req: web.RequestType{
				Category: "Card Services",
				Name:     "Report Phishing",
			},
			wantCode: 200,
		},
		{
			name: "重复新增幂等",
			req: web.RequestType{
				Category: "Card Services",
				Name:     "Report Phishing",
			},
			wantCode: 200,
		},
		{
			name: "名字为空",
			req: web.RequestType{
				Category: "Card Services",
			},
			wantCode:    500,
			wantBizCode: 416001,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			body, err := json.Marshal(tc.req)
			require.NoError(t, err)
			req, err := http.NewRequest(http.MethodPost,
				"/catalog/save", bytes.NewReader(body))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[int64]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantBizCode != 0 {
				assert.Equal(t, tc.wantBizCode, recorder.MustScan().Code)
			}
		})
	}
}

func (s *HandlerTestSuite) TestList() {
	req, err := http.NewRequest(http.MethodPost, "/catalog/list", nil)
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[[]web.RequestType]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	data := recorder.MustScan().Data
	// 初始化会种默认的八条
	assert.GreaterOrEqual(s.T(), len(data), 8)
	assert.Contains(s.T(), slice.Map(data, func(idx int, src web.RequestType) [2]string {
		return [2]string{src.Category, src.Name}
	}), [2]string{"Loan Services", "Apply for Loan"})
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
