package assign

import (
	"context"

	"assignment-hub/biz/adaptor"
	"assignment-hub/biz/application/dto/assign/show"
	"assignment-hub/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// ListTemplates 作业模板列表
func ListTemplates(ctx context.Context, c *app.RequestContext) {
	var req show.ListTemplatesReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.TemplateService.ListTemplates(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
