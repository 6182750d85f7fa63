package database

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const instrumentationName = "internal/pkg/database/tracing"

type spanCtxKey struct{}

// GormTracingPlugin 给所有数据库操作加上 OpenTelemetry 追踪
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

// Initialize 注册 GORM 回调
func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	if err := registerTracing(db.Callback().Query(), "query", p); err != nil {
		return err
	}
	if err := registerTracing(db.Callback().Create(), "create", p); err != nil {
		return err
	}
	if err := registerTracing(db.Callback().Update(), "update", p); err != nil {
		return err
	}
	if err := registerTracing(db.Callback().Delete(), "delete", p); err != nil {
		return err
	}
	if err := registerTracing(db.Callback().Row(), "row", p); err != nil {
		return err
	}
	return nil
}

// gorm 的 callback processor 类型未导出,这里用泛型约束来间接引用它
func registerTracing[C interface {
	Register(name string, fn func(*gorm.DB)) error
}, P interface {
	Before(name string) C
	After(name string) C
}](processor P, name string, p *GormTracingPlugin) error {
	gormName := "gorm:" + name
	if err := processor.Before(gormName).
		Register("tracing:before_"+name, p.before(name)); err != nil {
		return err
	}
	return processor.After(gormName).
		Register("tracing:after_"+name, p.after)
}

func (p *GormTracingPlugin) before(operation string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		ctx := db.Statement.Context
		ctx, span := p.tracer.Start(ctx, fmt.Sprintf("gorm.%s", operation),
			trace.WithSpanKind(trace.SpanKindClient))
		span.SetAttributes(
			attribute.String("db.system", "mysql"),
			attribute.String("db.operation", operation),
		)
		db.Statement.Context = context.WithValue(ctx, spanCtxKey{}, span)
	}
}

func (p *GormTracingPlugin) after(db *gorm.DB) {
	span, ok := db.Statement.Context.Value(spanCtxKey{}).(trace.Span)
	if !ok {
		return
	}
	defer span.End()
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}
	span.SetAttributes(attribute.Int64("db.rows_affected", db.RowsAffected))
	err := db.Error
	// 没查到不算链路错误
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
