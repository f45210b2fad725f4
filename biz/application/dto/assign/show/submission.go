package show

import "assignment-hub/biz/application/dto/basic"

type SubmitAnswerReq struct {
	AssignmentId string `protobuf:"bytes,1,opt,name=assignmentId,proto3" form:"assignmentId" json:"assignmentId" query:"assignmentId" vd:"len($)>0"`
	Answer       string `protobuf:"bytes,2,opt,name=answer,proto3" form:"answer" json:"answer" query:"answer" vd:"len($)>0&&len($)<=2000"`
}

type SubmitAnswerResp struct {
	Submission *SubmissionInfo `protobuf:"bytes,1,opt,name=submission,proto3" form:"submission" json:"submission" query:"submission"`
}

type ListMySubmissionsReq struct {
	PaginationOptions *basic.PaginationOptions `protobuf:"bytes,1,opt,name=paginationOptions,proto3" form:"paginationOptions" json:"paginationOptions" query:"paginationOptions"`
}

type ListMySubmissionsResp struct {
	Submissions []*SubmissionInfo `protobuf:"bytes,1,rep,name=submissions,proto3" form:"submissions" json:"submissions" query:"submissions"`
	Total       int64             `protobuf:"varint,2,opt,name=total,proto3" form:"total" json:"total" query:"total"`
}

type GetSubmissionReq struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" path:"id" json:"id" query:"id"`
}

type GetSubmissionResp struct {
	Submission *SubmissionInfo `protobuf:"bytes,1,opt,name=submission,proto3" form:"submission" json:"submission" query:"submission"`
}

type ReviewSubmissionReq struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" path:"id" json:"id" query:"id"`
}

type ReviewSubmissionResp struct {
	Submission *SubmissionInfo `protobuf:"bytes,1,opt,name=submission,proto3" form:"submission" json:"submission" query:"submission"`
}
