package models

// AdminProfile is the role-specific extension row for an ADMIN identity.
type AdminProfile struct {
	ID     int64 `json:"id" db:"id"`
	UserID int64 `json:"userId" db:"user_id"`

	User *Identity `json:"user,omitempty"` // Relation, no db tag
}

// StaffProfile is the role-specific extension row for a STAFF identity.
type StaffProfile struct {
	ID      int64  `json:"id" db:"id"`
	UserID  int64  `json:"userId" db:"user_id"`
	Address string `json:"address" db:"address"`

	User *Identity `json:"user,omitempty"` // Relation, no db tag
}

// StudentProfile is the role-specific extension row for a STUDENT identity.
// Course and session year always reference existing rows; the defaults
// (id 1) are applied when the identity is created.
type StudentProfile struct {
	ID            int64  `json:"id" db:"id"`
	UserID        int64  `json:"userId" db:"user_id"`
	CourseID      int64  `json:"courseId" db:"course_id"`
	SessionYearID int64  `json:"sessionYearId" db:"session_year_id"`
	Address       string `json:"address" db:"address"`
	Gender        string `json:"gender" db:"gender"`
	ProfilePic    string `json:"profilePic" db:"profile_pic"`

	// Relations (populated when needed)
	User        *Identity    `json:"user,omitempty"`
	Course      *Course      `json:"course,omitempty"`
	SessionYear *SessionYear `json:"sessionYear,omitempty"`
}
