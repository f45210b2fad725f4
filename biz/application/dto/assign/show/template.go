package show

import "assignment-hub/biz/application/dto/basic"

type ListTemplatesReq struct {
	Subject           *string                  `protobuf:"bytes,1,opt,name=subject,proto3,oneof" form:"subject" json:"subject" query:"subject"`
	Grade             []int64                  `protobuf:"varint,2,rep,name=grade,proto3" form:"grade" json:"grade" query:"grade"`
	PaginationOptions *basic.PaginationOptions `protobuf:"bytes,3,opt,name=paginationOptions,proto3" form:"paginationOptions" json:"paginationOptions" query:"paginationOptions"`
}

type ListTemplatesResp struct {
	Templates []*AssignmentTemplate `protobuf:"bytes,1,rep,name=templates,proto3" form:"templates" json:"templates" query:"templates"`
	Total     int64                 `protobuf:"varint,2,opt,name=total,proto3" form:"total" json:"total" query:"total"`
}
