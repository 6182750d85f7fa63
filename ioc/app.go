package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egin"
)

type App struct {
	Web   *egin.Component
	Admin AdminServer
	// Consumers 在 main 里统一启动
	Consumers []Consumer
}

type Consumer interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
}
