package adaptor

import (
	"context"
	"net/http"

	"assignment-hub/biz/infrastructure/util"
	"assignment-hub/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	hertzconsts "github.com/cloudwego/hertz/pkg/protocol/consts"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PostProcess 统一处理响应，领域错误按 grpc code 映射 HTTP 状态码
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	log.CtxInfo(ctx, "[%s] req=%s, resp=%s, err=%v", c.Path(), util.JSONF(req), util.JSONF(resp), err)

	if err == nil {
		c.JSON(hertzconsts.StatusOK, resp)
		return
	}

	s, ok := status.FromError(err)
	if !ok {
		// 存储等基础设施错误不向外暴露细节
		log.CtxError(ctx, "internal error: %v", err)
		c.JSON(hertzconsts.StatusInternalServerError, map[string]any{
			"code": http.StatusInternalServerError,
			"msg":  "server error",
		})
		return
	}

	c.JSON(httpCode(s.Code()), map[string]any{
		"code": int64(s.Code()),
		"msg":  s.Message(),
	})
}

func httpCode(code codes.Code) int {
	switch code {
	case codes.NotFound:
		return hertzconsts.StatusNotFound
	case codes.PermissionDenied:
		return hertzconsts.StatusForbidden
	case codes.FailedPrecondition, codes.InvalidArgument:
		return hertzconsts.StatusBadRequest
	case codes.AlreadyExists:
		return hertzconsts.StatusConflict
	case codes.Unauthenticated:
		return hertzconsts.StatusUnauthorized
	default:
		// 业务自定义code统一走200，由code字段区分
		if code >= 100 {
			return hertzconsts.StatusOK
		}
		return hertzconsts.StatusInternalServerError
	}
}
