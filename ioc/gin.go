package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mailtriage/internal/catalog"
	"github.com/ecodeclub/mailtriage/internal/email"
	"github.com/ecodeclub/mailtriage/internal/pkg/middleware"
	"github.com/ecodeclub/mailtriage/internal/search"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	emailHdl *email.Handler,
	catalogHdl *catalog.Handler,
	searchHdl *search.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "meoying.com")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	// 健康检查
	res.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "mailtriage",
		})
	})
	emailHdl.PublicRoutes(res.Engine)
	catalogHdl.PublicRoutes(res.Engine)
	searchHdl.PublicRoutes(res.Engine)
	return res
}
