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
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/mailtriage/internal/search"
	"github.com/ecodeclub/mailtriage/internal/search/internal/web"
	"github.com/ecodeclub/mailtriage/internal/test"
	testioc "github.com/ecodeclub/mailtriage/internal/test/ioc"
	mq "github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const emailProcessedTopic = "email_processed_events"

type HandlerTestSuite struct {
	suite.Suite
	server   *egin.Component
	producer mq.Producer
}

func (s *HandlerTestSuite) SetupSuite() {
	testmq := testioc.InitMQ()
	p, err := testmq.Producer(emailProcessedTopic)
	require.NoError(s.T(), err)
	s.producer = p

	m, err := search.InitModule(testioc.InitES(), testmq)
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	m.Hdl.PublicRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TestSearch() {
	evt := map[string]any{
		"id":           int64(1001),
		"sender":       "alice@example.com",
		"subject":      "Failed transaction on my account",
		"body":         "My transfer failed yesterday, please help.",
		"category":     "Transaction Issues",
		"request_type": "Failed Transaction",
		"summary":      "Customer reports a failed transfer.",
		"utime":        time.Now().UnixMilli(),
	}
	val, err := json.Marshal(evt)
	require.NoError(s.T(), err)
	_, err = s.producer.Produce(context.Background(), &mq.Message{Value: val})
	require.NoError(s.T(), err)
	// 等消费者写进 ES
	time.Sleep(3 * time.Second)

	body, err := json.Marshal(web.SearchReq{Keywords: "failed transaction"})
	require.NoError(s.T(), err)
	req, err := http.NewRequest(http.MethodPost,
		"/search/email", bytes.NewReader(body))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.SearchResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	emails := recorder.MustScan().Data.Emails
	require.NotEmpty(s.T(), emails)
	assert.Equal(s.T(), "Transaction Issues", emails[0].Category)
	assert.Equal(s.T(), "Failed Transaction", emails[0].RequestType)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
