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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mailtriage/internal/email/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	reportSvc service.ReportService
}

func NewAdminHandler(reportSvc service.ReportService) *AdminHandler {
	return &AdminHandler{reportSvc: reportSvc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/email")
	g.POST("/report", ginx.B[ReportReq](h.Report))
}

func (h *AdminHandler) Report(ctx *ginx.Context, req ReportReq) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > 1000 {
		req.Limit = 100
	}
	path, err := h.reportSvc.Generate(ctx, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: path}, nil
}
