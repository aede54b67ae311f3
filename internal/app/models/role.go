package models

// RoleType names a user role. Role ids are a fixed reference set seeded
// at startup; code branches on the enumeration, never on raw numbers.
type RoleType string

const (
	RoleStudent    RoleType = "student"
	RoleInstructor RoleType = "instructor"
	RoleAdmin      RoleType = "admin"
)

// Fixed role ids matching the seeded roles table.
const (
	RoleStudentID    int64 = 1
	RoleInstructorID int64 = 2
	RoleAdminID      int64 = 3
)

// Role is a row of the read-only roles reference table
type Role struct {
	RoleID   int64  `json:"role_id"`
	RoleName string `json:"role_name"`
}

var roleByID = map[int64]RoleType{
	RoleStudentID:    RoleStudent,
	RoleInstructorID: RoleInstructor,
	RoleAdminID:      RoleAdmin,
}

var idByRole = map[RoleType]int64{
	RoleStudent:    RoleStudentID,
	RoleInstructor: RoleInstructorID,
	RoleAdmin:      RoleAdminID,
}

// RoleFromID looks up the role enumeration for a role id
func RoleFromID(id int64) (RoleType, bool) {
	role, ok := roleByID[id]
	return role, ok
}

// ID returns the seeded role id for the enumeration value
func (r RoleType) ID() (int64, bool) {
	id, ok := idByRole[r]
	return id, ok
}

// DashboardPath returns the frontend landing path for the role after login
func (r RoleType) DashboardPath() string {
	switch r {
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleInstructor:
		return "/instructor/dashboard"
	case RoleStudent:
		return "/student/dashboard"
	default:
		return "/login"
	}
}
