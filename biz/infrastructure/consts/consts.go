package consts

var PageSize int64 = 10

// 数据库相关
const (
	ID           = "_id"
	TeacherID    = "teacher_id"
	StudentID    = "student_id"
	AssignmentID = "assignment_id"
	Email        = "email"
	Status       = "status"
	CreateTime   = "create_time"
	SubmitTime   = "submit_time"
)

// 角色
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// http
const (
	Post            = "POST"
	ContentTypeJson = "application/json"
	CharSetUTF8     = "UTF-8"
)

// 默认值
const (
	AppId = 21
)
