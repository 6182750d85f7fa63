//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/mailtriage/internal/ai"
	"github.com/ecodeclub/mailtriage/internal/catalog"
	"github.com/ecodeclub/mailtriage/internal/email"
	"github.com/ecodeclub/mailtriage/internal/search"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitES)

func InitApp() (*App, error) {
	wire.Build(
		BaseSet,
		ai.InitModule,
		catalog.InitModule,
		email.InitModule,
		search.InitModule,
		wire.FieldsOf(new(*ai.Module), "AdminHandler"),
		wire.FieldsOf(new(*catalog.Module), "Hdl"),
		wire.FieldsOf(new(*email.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*search.Module), "Hdl"),
		InitSession,
		initGinxServer,
		InitAdminServer,
		initConsumers,
		wire.Struct(new(App), "*"),
	)
	return new(App), nil
}
