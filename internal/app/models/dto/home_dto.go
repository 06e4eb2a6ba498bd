package dto

// CourseAggregate is the per-course slice of the admin dashboard
type CourseAggregate struct {
	CourseID     int64  `json:"courseId"`
	CourseName   string `json:"courseName"`
	StudentCount int64  `json:"studentCount"`
	SubjectCount int64  `json:"subjectCount"`
}

// SubjectAggregate is the per-subject slice of the admin dashboard
type SubjectAggregate struct {
	SubjectID       int64  `json:"subjectId"`
	SubjectName     string `json:"subjectName"`
	StudentCount    int64  `json:"studentCount"`
	AttendanceCount int64  `json:"attendanceCount"`
}

// AdminHomeResponse is the admin dashboard payload
type AdminHomeResponse struct {
	StudentCount int64              `json:"studentCount"`
	StaffCount   int64              `json:"staffCount"`
	CourseCount  int64              `json:"courseCount"`
	SubjectCount int64              `json:"subjectCount"`
	Courses      []CourseAggregate  `json:"courses"`
	Subjects     []SubjectAggregate `json:"subjects"`
}

// StaffHomeResponse is the staff dashboard payload
type StaffHomeResponse struct {
	StudentCount    int64 `json:"studentCount"`
	AttendanceCount int64 `json:"attendanceCount"`
	LeaveCount      int64 `json:"leaveCount"`
	SubjectCount    int64 `json:"subjectCount"`
}

// SubjectAttendanceItem is a student's per-subject attendance split
type SubjectAttendanceItem struct {
	SubjectID   int64  `json:"subjectId"`
	SubjectName string `json:"subjectName"`
	Present     int64  `json:"present"`
	Absent      int64  `json:"absent"`
}

// StudentHomeResponse is the student dashboard payload
type StudentHomeResponse struct {
	TotalAttendance int64                   `json:"totalAttendance"`
	Present         int64                   `json:"present"`
	Absent          int64                   `json:"absent"`
	Subjects        []SubjectAttendanceItem `json:"subjects"`
}
