package dto

// CreateFacultyRequest carries faculty creation data
type CreateFacultyRequest struct {
	FacultyName string `json:"faculty_name" binding:"required"`
}

// UpdateFacultyRequest carries faculty update data
type UpdateFacultyRequest struct {
	FacultyName string `json:"faculty_name" binding:"required"`
}

// CreateDepartmentRequest carries department creation data
type CreateDepartmentRequest struct {
	DepartmentName string `json:"department_name" binding:"required"`
	FacultyID      int64  `json:"faculty_id" binding:"required"`
}

// UpdateDepartmentRequest carries department update data
type UpdateDepartmentRequest struct {
	DepartmentName string `json:"department_name" binding:"required"`
	FacultyID      int64  `json:"faculty_id" binding:"required"`
}
