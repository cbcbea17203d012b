package dto

// DepartmentCreateRequest carries the payload for creating a department.
type DepartmentCreateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Head        *string `json:"head"`
}

// DepartmentUpdateRequest carries a partial department update.
type DepartmentUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Head        *string `json:"head"`
}

// SubjectCreateRequest carries the payload for creating a catalog subject.
type SubjectCreateRequest struct {
	Name         string  `json:"name" validate:"required"`
	Code         string  `json:"code" validate:"required"`
	Description  *string `json:"description"`
	Credits      *int    `json:"credits" validate:"omitempty,min=0"`
	DepartmentID *string `json:"department_id"`
}

// SubjectUpdateRequest carries a partial subject update.
type SubjectUpdateRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Credits      *int    `json:"credits" validate:"omitempty,min=0"`
	DepartmentID *string `json:"department_id"`
}

// PeriodCreateRequest carries the payload for creating an academic period.
type PeriodCreateRequest struct {
	Name      string `json:"name" validate:"required"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	IsActive  bool   `json:"is_active"`
}

// PeriodUpdateRequest carries a partial academic period update.
type PeriodUpdateRequest struct {
	Name      *string `json:"name"`
	StartDate *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}
