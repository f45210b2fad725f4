package show

type SignUpReq struct {
	Name     string `protobuf:"bytes,1,opt,name=name,proto3" form:"name" json:"name" query:"name" vd:"len($)>0&&len($)<=50"`
	Email    string `protobuf:"bytes,2,opt,name=email,proto3" form:"email" json:"email" query:"email" vd:"email($)"`
	Password string `protobuf:"bytes,3,opt,name=password,proto3" form:"password" json:"password" query:"password" vd:"len($)>=6"`
	Role     string `protobuf:"bytes,4,opt,name=role,proto3" form:"role" json:"role" query:"role" vd:"len($)>0"`
}

type SignUpResp struct {
	User         *UserInfo `protobuf:"bytes,1,opt,name=user,proto3" form:"user" json:"user" query:"user"`
	AccessToken  string    `protobuf:"bytes,2,opt,name=accessToken,proto3" form:"accessToken" json:"accessToken" query:"accessToken"`
	AccessExpire int64     `protobuf:"varint,3,opt,name=accessExpire,proto3" form:"accessExpire" json:"accessExpire" query:"accessExpire"`
}

type SignInReq struct {
	Email    string `protobuf:"bytes,1,opt,name=email,proto3" form:"email" json:"email" query:"email" vd:"len($)>0"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" form:"password" json:"password" query:"password" vd:"len($)>0"`
}

type SignInResp struct {
	User         *UserInfo `protobuf:"bytes,1,opt,name=user,proto3" form:"user" json:"user" query:"user"`
	AccessToken  string    `protobuf:"bytes,2,opt,name=accessToken,proto3" form:"accessToken" json:"accessToken" query:"accessToken"`
	AccessExpire int64     `protobuf:"varint,3,opt,name=accessExpire,proto3" form:"accessExpire" json:"accessExpire" query:"accessExpire"`
}

type GetUserInfoReq struct {
}

type GetUserInfoResp struct {
	User *UserInfo `protobuf:"bytes,1,opt,name=user,proto3" form:"user" json:"user" query:"user"`
}
