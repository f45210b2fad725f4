package show

type Response struct {
	Code int64  `protobuf:"varint,1,opt,name=code,proto3" form:"code" json:"code" query:"code"`
	Msg  string `protobuf:"bytes,2,opt,name=msg,proto3" form:"msg" json:"msg" query:"msg"`
}

// AssignmentInfo 作业详情，老师信息通过二次查询填充
type AssignmentInfo struct {
	Id           string `protobuf:"bytes,1,opt,name=id,proto3" form:"id" json:"id" query:"id"`
	Title        string `protobuf:"bytes,2,opt,name=title,proto3" form:"title" json:"title" query:"title"`
	Description  string `protobuf:"bytes,3,opt,name=description,proto3" form:"description" json:"description" query:"description"`
	DueDate      int64  `protobuf:"varint,4,opt,name=dueDate,proto3" form:"dueDate" json:"dueDate" query:"dueDate"`
	Status       string `protobuf:"bytes,5,opt,name=status,proto3" form:"status" json:"status" query:"status"`
	TeacherId    string `protobuf:"bytes,6,opt,name=teacherId,proto3" form:"teacherId" json:"teacherId" query:"teacherId"`
	TeacherName  string `protobuf:"bytes,7,opt,name=teacherName,proto3" form:"teacherName" json:"teacherName" query:"teacherName"`
	TeacherEmail string `protobuf:"bytes,8,opt,name=teacherEmail,proto3" form:"teacherEmail" json:"teacherEmail" query:"teacherEmail"`
	CreateTime   int64  `protobuf:"varint,9,opt,name=createTime,proto3" form:"createTime" json:"createTime" query:"createTime"`
	UpdateTime   int64  `protobuf:"varint,10,opt,name=updateTime,proto3" form:"updateTime" json:"updateTime" query:"updateTime"`
}

// SubmissionInfo 提交详情
// 老师端填充学生信息，学生端填充作业摘要
type SubmissionInfo struct {
	Id                string `protobuf:"bytes,1,opt,name=id,proto3" form:"id" json:"id" query:"id"`
	AssignmentId      string `protobuf:"bytes,2,opt,name=assignmentId,proto3" form:"assignmentId" json:"assignmentId" query:"assignmentId"`
	StudentId         string `protobuf:"bytes,3,opt,name=studentId,proto3" form:"studentId" json:"studentId" query:"studentId"`
	StudentName       string `protobuf:"bytes,4,opt,name=studentName,proto3" form:"studentName" json:"studentName" query:"studentName"`
	StudentEmail      string `protobuf:"bytes,5,opt,name=studentEmail,proto3" form:"studentEmail" json:"studentEmail" query:"studentEmail"`
	Answer            string `protobuf:"bytes,6,opt,name=answer,proto3" form:"answer" json:"answer" query:"answer"`
	IsReviewed        bool   `protobuf:"varint,7,opt,name=isReviewed,proto3" form:"isReviewed" json:"isReviewed" query:"isReviewed"`
	SubmitTime        int64  `protobuf:"varint,8,opt,name=submitTime,proto3" form:"submitTime" json:"submitTime" query:"submitTime"`
	ReviewTime        int64  `protobuf:"varint,9,opt,name=reviewTime,proto3" form:"reviewTime" json:"reviewTime" query:"reviewTime"`
	AssignmentTitle   string `protobuf:"bytes,10,opt,name=assignmentTitle,proto3" form:"assignmentTitle" json:"assignmentTitle" query:"assignmentTitle"`
	AssignmentDueDate int64  `protobuf:"varint,11,opt,name=assignmentDueDate,proto3" form:"assignmentDueDate" json:"assignmentDueDate" query:"assignmentDueDate"`
	AssignmentStatus  string `protobuf:"bytes,12,opt,name=assignmentStatus,proto3" form:"assignmentStatus" json:"assignmentStatus" query:"assignmentStatus"`
}

type UserInfo struct {
	Id    string `protobuf:"bytes,1,opt,name=id,proto3" form:"id" json:"id" query:"id"`
	Name  string `protobuf:"bytes,2,opt,name=name,proto3" form:"name" json:"name" query:"name"`
	Email string `protobuf:"bytes,3,opt,name=email,proto3" form:"email" json:"email" query:"email"`
	Role  string `protobuf:"bytes,4,opt,name=role,proto3" form:"role" json:"role" query:"role"`
}

type AssignmentTemplate struct {
	Id          string `protobuf:"bytes,1,opt,name=id,proto3" form:"id" json:"id" query:"id"`
	Subject     string `protobuf:"bytes,2,opt,name=subject,proto3" form:"subject" json:"subject" query:"subject"`
	Grade       int64  `protobuf:"varint,3,opt,name=grade,proto3" form:"grade" json:"grade" query:"grade"`
	Title       string `protobuf:"bytes,4,opt,name=title,proto3" form:"title" json:"title" query:"title"`
	Description string `protobuf:"bytes,5,opt,name=description,proto3" form:"description" json:"description" query:"description"`
}
