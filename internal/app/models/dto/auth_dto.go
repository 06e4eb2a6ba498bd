package dto

// LoginRequest represents the login form submission
type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email" example:"admin@school.edu"`
	Password string `form:"password" json:"password" binding:"required" example:"secret123"`
}

// LoginPageResponse describes the login form for clients rendering it
type LoginPageResponse struct {
	Action string `json:"action" example:"/login"`
	Method string `json:"method" example:"POST"`
	Fields []string `json:"fields" example:"email,password"`
}

// SessionInfo is attached to the request context after cookie validation
type SessionInfo struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
