package dto

// ApplyLeaveRequest represents a new leave request from a student or staff member
type ApplyLeaveRequest struct {
	Date    string `json:"date" binding:"required" example:"2025-11-14"`
	Message string `json:"message" binding:"required" example:"Family commitment"`
}

// LeaveResponse represents a leave request in list responses.
// Status: 0 pending, 1 approved, 2 rejected.
type LeaveResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name,omitempty"`
	Date      string `json:"date"`
	Message   string `json:"message"`
	Status    int    `json:"status"`
	CreatedAt string `json:"createdAt"`
}
