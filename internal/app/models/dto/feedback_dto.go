package dto

// SubmitFeedbackRequest represents a new feedback message
type SubmitFeedbackRequest struct {
	Message string `json:"message" binding:"required" example:"The lab machines need upgrades"`
}

// FeedbackReplyRequest carries the admin's reply to one feedback entry.
// Form-encoded for the legacy reply endpoints.
type FeedbackReplyRequest struct {
	ID    int64  `form:"id" json:"id" binding:"required"`
	Reply string `form:"reply" json:"reply" binding:"required"`
}

// FeedbackResponse represents one feedback entry with its reply, if any
type FeedbackResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name,omitempty"`
	Message   string `json:"message"`
	Reply     string `json:"reply"`
	CreatedAt string `json:"createdAt"`
}
