package dto

// StudentCreateRequest carries the payload for creating a student profile.
// Dates travel as YYYY-MM-DD strings and are parsed by the service.
type StudentCreateRequest struct {
	UserID         string  `json:"user_id" validate:"required"`
	StudentCode    string  `json:"student_code" validate:"required"`
	Grade          string  `json:"grade" validate:"required"`
	DateOfBirth    *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Address        *string `json:"address"`
	Phone          *string `json:"phone"`
	EnrollmentDate string  `json:"enrollment_date" validate:"required,datetime=2006-01-02"`
	Status         string  `json:"status" validate:"omitempty,oneof=active inactive at_risk"`
}

// StudentUpdateRequest carries a partial student update.
type StudentUpdateRequest struct {
	Grade       *string `json:"grade"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive at_risk"`
}
