package main

import (
	"context"
	"time"

	"assignment-hub/biz/adaptor"
	"assignment-hub/biz/infrastructure/config"
	"assignment-hub/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
)

// AccessLog 给每个请求分配requestId并记录访问日志
// 健康检查等高频路径可通过 Log.NoLogPaths 配置跳过
func AccessLog() app.HandlerFunc {
	noLog := make(map[string]struct{})
	for _, p := range config.GetConfig().Log.NoLogPaths {
		noLog[p] = struct{}{}
	}

	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		requestId := uuid.New().String()
		c.Response.Header.Set("X-Request-Id", requestId)

		ctx = adaptor.InjectContext(ctx, c)
		c.Next(ctx)

		if _, ok := noLog[string(c.Path())]; ok {
			return
		}
		log.CtxInfo(ctx, "[%s] %s %s status=%d cost=%dms",
			requestId, c.Method(), c.Path(), c.Response.StatusCode(), time.Since(start).Milliseconds())
	}
}
