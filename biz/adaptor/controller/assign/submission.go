package assign

import (
	"context"

	"assignment-hub/biz/adaptor"
	"assignment-hub/biz/application/dto/assign/show"
	"assignment-hub/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// SubmitAnswer 学生提交答案
func SubmitAnswer(ctx context.Context, c *app.RequestContext) {
	var req show.SubmitAnswerReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.SubmissionService.SubmitAnswer(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListMySubmissions 学生查看自己的提交
func ListMySubmissions(ctx context.Context, c *app.RequestContext) {
	var req show.ListMySubmissionsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.SubmissionService.ListMySubmissions(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetSubmission 提交详情
func GetSubmission(ctx context.Context, c *app.RequestContext) {
	var req show.GetSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.SubmissionService.GetSubmission(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ReviewSubmission 老师复核提交
func ReviewSubmission(ctx context.Context, c *app.RequestContext) {
	var req show.ReviewSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.SubmissionService.ReviewSubmission(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
