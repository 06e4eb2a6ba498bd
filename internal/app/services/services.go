package services

// Services defined in this package:
// - AuthService: email+password login and session issuance
// - AccountService: identity lifecycle and the role profile cascade
// - AcademicService: courses, session years and subjects
// - AttendanceService: roll calls and per-student reports
// - LeaveService: leave requests and their approval lifecycle
// - FeedbackService: feedback messages and administrator replies
// - ResultService: per-subject marks with overwrite semantics
// - DashboardService: per-role home screen aggregates
