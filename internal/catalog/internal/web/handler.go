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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mailtriage/internal/catalog/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/catalog/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/catalog")
	g.POST("/list", ginx.W(h.List))
	g.POST("/save", ginx.B(h.Save))
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	rts, err := h.svc.List(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(rts, func(idx int, src domain.RequestType) RequestType {
			return newRequestType(src)
		}),
	}, nil
}

func (h *Handler) Save(ctx *ginx.Context, req RequestType) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, domain.RequestType{
		Id:       req.Id,
		Category: req.Category,
		Name:     req.Name,
	})
	if errors.Is(err, service.ErrInvalidRequestType) {
		return invalidInputResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}
