package service

import (
	"context"

	"assignment-hub/biz/adaptor"
	"assignment-hub/biz/infrastructure/consts"
	"assignment-hub/biz/infrastructure/repository/user"
)

// currentUser 解析调用方身份并加载用户记录，角色以库里为准
// token里的用户已不存在也按未认证处理，NotFound留给业务实体
func currentUser(ctx context.Context, um user.IMongoMapper) (*user.User, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	u, err := um.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotAuthentication
	}
	return u, nil
}
