// Code generated by hertz generator.

package main

import (
	"assignment-hub/biz/infrastructure/config"
	"assignment-hub/provider"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/monitor-prometheus"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
)

func main() {
	provider.Init()
	cfg := config.GetConfig()

	otel.SetTextMapPropagator(b3.New())
	tracer, tracerCfg := hertztracing.NewServerTracer()

	h := server.New(
		server.WithHostPorts(cfg.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(":9091", "/metrics")),
		tracer,
	)
	h.Use(hertztracing.ServerMiddleware(tracerCfg))
	h.Use(AccessLog())

	customizedRegister(h)
	h.Spin()
}
