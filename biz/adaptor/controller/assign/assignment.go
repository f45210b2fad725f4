package assign

import (
	"context"

	"assignment-hub/biz/adaptor"
	"assignment-hub/biz/application/dto/assign/show"
	"assignment-hub/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CreateAssignment 创建作业
func CreateAssignment(ctx context.Context, c *app.RequestContext) {
	var req show.CreateAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.CreateAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListAssignments 作业列表
func ListAssignments(ctx context.Context, c *app.RequestContext) {
	var req show.ListAssignmentsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.ListAssignments(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetAssignment 作业详情
func GetAssignment(ctx context.Context, c *app.RequestContext) {
	var req show.GetAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.GetAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateAssignment 修改作业
func UpdateAssignment(ctx context.Context, c *app.RequestContext) {
	var req show.UpdateAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.UpdateAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteAssignment 删除作业
func DeleteAssignment(ctx context.Context, c *app.RequestContext) {
	var req show.DeleteAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.DeleteAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// PublishAssignment 发布作业
func PublishAssignment(ctx context.Context, c *app.RequestContext) {
	var req show.PublishAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.PublishAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CompleteAssignment 结束作业
func CompleteAssignment(ctx context.Context, c *app.RequestContext) {
	var req show.CompleteAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.CompleteAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListAssignmentSubmissions 老师查看作业下的提交列表
func ListAssignmentSubmissions(ctx context.Context, c *app.RequestContext) {
	var req show.ListAssignmentSubmissionsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.ListAssignmentSubmissions(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
