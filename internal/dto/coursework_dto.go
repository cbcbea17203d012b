package dto

// AttendanceCreateRequest records one attendance mark for an enrollment.
type AttendanceCreateRequest struct {
	EnrollmentID string  `json:"enrollment_id" validate:"required"`
	Date         string  `json:"date" validate:"required,datetime=2006-01-02"`
	Status       string  `json:"status" validate:"required,oneof=present absent late excused"`
	Notes        *string `json:"notes"`
}

// ScheduleCreateRequest adds a weekly meeting slot to a course.
type ScheduleCreateRequest struct {
	CourseID  string  `json:"course_id" validate:"required"`
	DayOfWeek string  `json:"day_of_week" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string  `json:"end_time" validate:"required,datetime=15:04"`
	Classroom *string `json:"classroom"`
}

// AssignmentCreateRequest publishes a due-dated task for a course.
type AssignmentCreateRequest struct {
	CourseID    string   `json:"course_id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description *string  `json:"description"`
	DueDate     string   `json:"due_date" validate:"required"`
	MaxPoints   *float64 `json:"max_points" validate:"omitempty,gt=0"`
}
