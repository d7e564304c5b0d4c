package main

import (
	"classroom-sync/biz/infrastructure/config"
	"classroom-sync/provider"

	"github.com/cloudwego/hertz/pkg/app/server"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
)

func Init() {
	provider.Init()
}

func main() {
	Init()
	c := config.GetConfig()

	otel.SetTextMapPropagator(b3.New())
	tracer, cfg := hertztracing.NewServerTracer()

	h := server.New(
		tracer,
		server.WithHostPorts(c.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(":9091", "/metrics")),
	)
	h.Use(hertztracing.ServerMiddleware(cfg))

	customizedRegister(h)
	h.Spin()
}
