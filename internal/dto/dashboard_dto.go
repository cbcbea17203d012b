package dto

// StatisticsResponse is the point-in-time dashboard snapshot.
type StatisticsResponse struct {
	TotalStudents    int64 `json:"total_students"`
	TotalTeachers    int64 `json:"total_teachers"`
	ActiveCourses    int64 `json:"active_courses"`
	TotalDepartments int64 `json:"total_departments"`
	CacheHit         bool  `json:"-"`
}
