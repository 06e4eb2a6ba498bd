package dto

// CreateStaffRequest represents a staff creation payload
type CreateStaffRequest struct {
	Username  string `json:"username" binding:"required" example:"jdoe"`
	Email     string `json:"email" binding:"required,email" example:"jdoe@school.edu"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required" example:"John"`
	LastName  string `json:"lastName" binding:"required" example:"Doe"`
	Address   string `json:"address" example:"12 North Street"`
}

// UpdateStaffRequest represents a staff update payload.
// Password is optional; empty means keep the current one.
type UpdateStaffRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Address   string `json:"address"`
}

// CreateStudentRequest represents a student creation payload.
// CourseID and SessionYearID are optional; the cascade assigns the
// defaults and the chosen values are applied afterwards.
type CreateStudentRequest struct {
	Username      string `json:"username" binding:"required" example:"asmith"`
	Email         string `json:"email" binding:"required,email" example:"asmith@school.edu"`
	Password      string `json:"password" binding:"required,min=8"`
	FirstName     string `json:"firstName" binding:"required" example:"Alice"`
	LastName      string `json:"lastName" binding:"required" example:"Smith"`
	CourseID      int64  `json:"courseId" example:"2"`
	SessionYearID int64  `json:"sessionYearId" example:"1"`
	Address       string `json:"address"`
	Gender        string `json:"gender" example:"Female"`
	ProfilePic    string `json:"profilePic"`
}

// UpdateStudentRequest represents a student update payload
type UpdateStudentRequest struct {
	Username      string `json:"username" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password"`
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	CourseID      int64  `json:"courseId"`
	SessionYearID int64  `json:"sessionYearId"`
	Address       string `json:"address"`
	Gender        string `json:"gender"`
	ProfilePic    string `json:"profilePic"`
}

// StaffResponse represents a staff member in list and detail responses
type StaffResponse struct {
	ID        int64  `json:"id" example:"3"`
	UserID    int64  `json:"userId" example:"7"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
}

// StudentResponse represents a student in list and detail responses
type StudentResponse struct {
	ID            int64  `json:"id" example:"5"`
	UserID        int64  `json:"userId" example:"9"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	CourseID      int64  `json:"courseId"`
	SessionYearID int64  `json:"sessionYearId"`
	Address       string `json:"address"`
	Gender        string `json:"gender"`
	ProfilePic    string `json:"profilePic"`
}

// UpdateProfileRequest represents a self-service profile update.
// Address is ignored for admins; password empty means unchanged.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Password  string `json:"password"`
	Address   string `json:"address"`
}

// CheckEmailRequest asks whether an email is already taken
type CheckEmailRequest struct {
	Email string `form:"email" json:"email" binding:"required"`
}

// CheckUsernameRequest asks whether a username is already taken
type CheckUsernameRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
}
