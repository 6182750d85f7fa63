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
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mailtriage/internal/search/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.SearchService
}

func NewHandler(svc service.SearchService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/search")
	g.POST("/email", ginx.B[SearchReq](h.Search))
}

func (h *Handler) Search(ctx *ginx.Context, req SearchReq) (ginx.Result, error) {
	keywords := strings.TrimSpace(req.Keywords)
	if keywords == "" {
		return ginx.Result{Data: SearchResp{}}, nil
	}
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	emails, err := h.svc.Search(ctx, req.Offset, req.Limit, keywords)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newSearchResp(emails)}, nil
}
