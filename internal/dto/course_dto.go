package dto

// CourseCreateRequest carries the payload for scheduling a course.
type CourseCreateRequest struct {
	SubjectID        string  `json:"subject_id" validate:"required"`
	TeacherID        string  `json:"teacher_id" validate:"required"`
	AcademicPeriodID string  `json:"academic_period_id" validate:"required"`
	CourseCode       string  `json:"course_code" validate:"required"`
	Schedule         *string `json:"schedule"`
	MaxStudents      *int    `json:"max_students" validate:"omitempty,min=1"`
	Status           string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CourseUpdateRequest carries a partial course update.
type CourseUpdateRequest struct {
	TeacherID   *string `json:"teacher_id"`
	Schedule    *string `json:"schedule"`
	MaxStudents *int    `json:"max_students" validate:"omitempty,min=1"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// EnrollmentCreateRequest registers a student in a course.
type EnrollmentCreateRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	CourseID  string `json:"course_id" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=enrolled dropped completed"`
}

// EnrollmentUpdateRequest carries a partial enrollment update.
type EnrollmentUpdateRequest struct {
	Status     *string  `json:"status" validate:"omitempty,oneof=enrolled dropped completed"`
	FinalGrade *float64 `json:"final_grade" validate:"omitempty,min=0"`
}
