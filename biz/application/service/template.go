package service

import (
	"context"

	"assignment-hub/biz/application/dto/assign/show"
	"assignment-hub/biz/infrastructure/consts"
	"assignment-hub/biz/infrastructure/repository/template"
	"assignment-hub/biz/infrastructure/repository/user"
	"assignment-hub/biz/infrastructure/util/log"

	"github.com/google/wire"
)

type ITemplateService interface {
	ListTemplates(ctx context.Context, req *show.ListTemplatesReq) (*show.ListTemplatesResp, error)
}

type TemplateService struct {
	UserMapper     user.IMongoMapper
	TemplateMapper template.IMySQLMapper
}

var TemplateServiceSet = wire.NewSet(
	wire.Struct(new(TemplateService), "*"),
	wire.Bind(new(ITemplateService), new(*TemplateService)),
)

// ListTemplates 作业模板库，仅老师可查，用于建作业时参考
func (s *TemplateService) ListTemplates(ctx context.Context, req *show.ListTemplatesReq) (*show.ListTemplatesResp, error) {
	u, err := currentUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if u.Role != consts.RoleTeacher {
		return nil, consts.ErrForbidden
	}

	templates, total, err := s.TemplateMapper.ListTemplates(ctx, req)
	if err != nil {
		log.CtxError(ctx, "list templates failed: %v", err)
		return nil, err
	}

	return &show.ListTemplatesResp{Templates: templates, Total: total}, nil
}
