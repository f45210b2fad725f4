package basic

type UserMeta struct {
	UserId          string `protobuf:"bytes,1,opt,name=userId,proto3" form:"userId" json:"userId" query:"userId"`
	AppId           int64  `protobuf:"varint,2,opt,name=appId,proto3" form:"appId" json:"appId" query:"appId"`
	DeviceId        string `protobuf:"bytes,3,opt,name=deviceId,proto3" form:"deviceId" json:"deviceId" query:"deviceId"`
	SessionUserId   string `protobuf:"bytes,4,opt,name=sessionUserId,proto3" form:"sessionUserId" json:"sessionUserId" query:"sessionUserId"`
	SessionAppId    int64  `protobuf:"varint,5,opt,name=sessionAppId,proto3" form:"sessionAppId" json:"sessionAppId" query:"sessionAppId"`
	SessionDeviceId string `protobuf:"bytes,6,opt,name=sessionDeviceId,proto3" form:"sessionDeviceId" json:"sessionDeviceId" query:"sessionDeviceId"`
}

func (m *UserMeta) GetUserId() string {
	if m == nil {
		return ""
	}
	return m.UserId
}

type PaginationOptions struct {
	Page      *int64 `protobuf:"varint,1,opt,name=page,proto3,oneof" form:"page" json:"page" query:"page"`
	Limit     *int64 `protobuf:"varint,2,opt,name=limit,proto3,oneof" form:"limit" json:"limit" query:"limit"`
	LastToken *string `protobuf:"bytes,3,opt,name=lastToken,proto3,oneof" form:"lastToken" json:"lastToken" query:"lastToken"`
	Backward  *bool  `protobuf:"varint,4,opt,name=backward,proto3,oneof" form:"backward" json:"backward" query:"backward"`
}
