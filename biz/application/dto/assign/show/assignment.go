package show

import "assignment-hub/biz/application/dto/basic"

type CreateAssignmentReq struct {
	Title       string `protobuf:"bytes,1,opt,name=title,proto3" form:"title" json:"title" query:"title" vd:"len($)>0&&len($)<=100"`
	Description string `protobuf:"bytes,2,opt,name=description,proto3" form:"description" json:"description" query:"description" vd:"len($)>0&&len($)<=1000"`
	DueDate     int64  `protobuf:"varint,3,opt,name=dueDate,proto3" form:"dueDate" json:"dueDate" query:"dueDate" vd:"$>0"`
}

type CreateAssignmentResp struct {
	Assignment *AssignmentInfo `protobuf:"bytes,1,opt,name=assignment,proto3" form:"assignment" json:"assignment" query:"assignment"`
}

type ListAssignmentsReq struct {
	PaginationOptions *basic.PaginationOptions `protobuf:"bytes,1,opt,name=paginationOptions,proto3" form:"paginationOptions" json:"paginationOptions" query:"paginationOptions"`
}

type ListAssignmentsResp struct {
	Assignments []*AssignmentInfo `protobuf:"bytes,1,rep,name=assignments,proto3" form:"assignments" json:"assignments" query:"assignments"`
	Total       int64             `protobuf:"varint,2,opt,name=total,proto3" form:"total" json:"total" query:"total"`
}

type GetAssignmentReq struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" path:"id" json:"id" query:"id"`
}

type GetAssignmentResp struct {
	Assignment *AssignmentInfo `protobuf:"bytes,1,opt,name=assignment,proto3" form:"assignment" json:"assignment" query:"assignment"`
}

type UpdateAssignmentReq struct {
	Id          string  `protobuf:"bytes,1,opt,name=id,proto3" path:"id" json:"id" query:"id"`
	Title       *string `protobuf:"bytes,2,opt,name=title,proto3,oneof" form:"title" json:"title" query:"title"`
	Description *string `protobuf:"bytes,3,opt,name=description,proto3,oneof" form:"description" json:"description" query:"description"`
	DueDate     *int64  `protobuf:"varint,4,opt,name=dueDate,proto3,oneof" form:"dueDate" json:"dueDate" query:"dueDate"`
}

type UpdateAssignmentResp struct {
	Assignment *AssignmentInfo `protobuf:"bytes,1,opt,name=assignment,proto3" form:"assignment" json:"assignment" query:"assignment"`
}

type DeleteAssignmentReq struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" path:"id" json:"id" query:"id"`
}

type PublishAssignmentReq struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" path:"id" json:"id" query:"id"`
}

type PublishAssignmentResp struct {
	Assignment *AssignmentInfo `protobuf:"bytes,1,opt,name=assignment,proto3" form:"assignment" json:"assignment" query:"assignment"`
}

type CompleteAssignmentReq struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" path:"id" json:"id" query:"id"`
}

type CompleteAssignmentResp struct {
	Assignment *AssignmentInfo `protobuf:"bytes,1,opt,name=assignment,proto3" form:"assignment" json:"assignment" query:"assignment"`
}

type ListAssignmentSubmissionsReq struct {
	Id                string                   `protobuf:"bytes,1,opt,name=id,proto3" path:"id" json:"id" query:"id"`
	PaginationOptions *basic.PaginationOptions `protobuf:"bytes,2,opt,name=paginationOptions,proto3" form:"paginationOptions" json:"paginationOptions" query:"paginationOptions"`
}

type ListAssignmentSubmissionsResp struct {
	Submissions []*SubmissionInfo `protobuf:"bytes,1,rep,name=submissions,proto3" form:"submissions" json:"submissions" query:"submissions"`
	Total       int64             `protobuf:"varint,2,opt,name=total,proto3" form:"total" json:"total" query:"total"`
}
