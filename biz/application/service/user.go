package service

import (
	"context"

	"assignment-hub/biz/adaptor"
	"assignment-hub/biz/application/dto/assign/show"
	"assignment-hub/biz/infrastructure/consts"
	"assignment-hub/biz/infrastructure/repository/user"
	"assignment-hub/biz/infrastructure/util/log"

	"github.com/google/wire"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	SignUp(ctx context.Context, req *show.SignUpReq) (*show.SignUpResp, error)
	SignIn(ctx context.Context, req *show.SignInReq) (*show.SignInResp, error)
	GetUserInfo(ctx context.Context, req *show.GetUserInfoReq) (*show.GetUserInfoResp, error)
}

type UserService struct {
	UserMapper user.IMongoMapper
}

var UserServiceSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)

// SignUp 注册并直接签发token
func (s *UserService) SignUp(ctx context.Context, req *show.SignUpReq) (*show.SignUpResp, error) {
	if req.Role != consts.RoleTeacher && req.Role != consts.RoleStudent {
		return nil, consts.ErrInvalidRole
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.CtxError(ctx, "hash password failed: %v", err)
		return nil, consts.ErrSignUp
	}

	u := &user.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
	}
	if err = s.UserMapper.Insert(ctx, u); err != nil {
		log.CtxError(ctx, "sign up failed: %v", err)
		return nil, err
	}

	token, expire, err := adaptor.GenerateJwtToken(u.ID.Hex())
	if err != nil {
		log.CtxError(ctx, "generate token failed: %v", err)
		return nil, consts.ErrSignUp
	}

	return &show.SignUpResp{
		User:         userInfo(u),
		AccessToken:  token,
		AccessExpire: expire,
	}, nil
}

// SignIn 登录，邮箱不存在和密码错误返回同一个错误
func (s *UserService) SignIn(ctx context.Context, req *show.SignInReq) (*show.SignInResp, error) {
	u, err := s.UserMapper.FindOneByEmail(ctx, req.Email)
	if err != nil {
		return nil, consts.ErrSignIn
	}
	if err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, consts.ErrSignIn
	}

	token, expire, err := adaptor.GenerateJwtToken(u.ID.Hex())
	if err != nil {
		log.CtxError(ctx, "generate token failed: %v", err)
		return nil, consts.ErrSignIn
	}

	return &show.SignInResp{
		User:         userInfo(u),
		AccessToken:  token,
		AccessExpire: expire,
	}, nil
}

func (s *UserService) GetUserInfo(ctx context.Context, _ *show.GetUserInfoReq) (*show.GetUserInfoResp, error) {
	u, err := currentUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	return &show.GetUserInfoResp{User: userInfo(u)}, nil
}
