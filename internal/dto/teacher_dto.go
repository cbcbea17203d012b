package dto

// TeacherCreateRequest carries the payload for creating a teacher profile.
type TeacherCreateRequest struct {
	UserID         string  `json:"user_id" validate:"required"`
	TeacherCode    string  `json:"teacher_code" validate:"required"`
	DepartmentID   *string `json:"department_id"`
	Specialization *string `json:"specialization"`
	HireDate       string  `json:"hire_date" validate:"required,datetime=2006-01-02"`
	Status         string  `json:"status" validate:"omitempty,oneof=active on_leave inactive"`
	Phone          *string `json:"phone"`
}

// TeacherUpdateRequest carries a partial teacher update.
type TeacherUpdateRequest struct {
	DepartmentID   *string `json:"department_id"`
	Specialization *string `json:"specialization"`
	Status         *string `json:"status" validate:"omitempty,oneof=active on_leave inactive"`
	Phone          *string `json:"phone"`
}
