package dto

// GradeCreateRequest records one assessment result for an enrollment.
type GradeCreateRequest struct {
	EnrollmentID   string   `json:"enrollment_id" validate:"required"`
	AssessmentType string   `json:"assessment_type" validate:"required"`
	AssessmentName string   `json:"assessment_name" validate:"required"`
	Grade          *float64 `json:"grade" validate:"required,min=0"`
	MaxGrade       *float64 `json:"max_grade" validate:"omitempty,gt=0"`
	Weight         *float64 `json:"weight" validate:"omitempty,min=0,max=100"`
	AssessmentDate string   `json:"assessment_date" validate:"required,datetime=2006-01-02"`
}

// GradeUpdateRequest carries a partial grade update.
type GradeUpdateRequest struct {
	AssessmentType *string  `json:"assessment_type"`
	AssessmentName *string  `json:"assessment_name"`
	Grade          *float64 `json:"grade" validate:"omitempty,min=0"`
	MaxGrade       *float64 `json:"max_grade" validate:"omitempty,gt=0"`
	Weight         *float64 `json:"weight" validate:"omitempty,min=0,max=100"`
}
