package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/edunexo/academico-api/internal/models"
)

func seedCourse(t *testing.T, db *gorm.DB, code string) models.Course {
	t.Helper()

	teacherUser := seedUser(t, db, code+"-teacher@example.com", models.RoleTeacher)
	teacher := models.Teacher{UserID: teacherUser.ID, TeacherCode: "TCH-" + code, HireDate: time.Now(), Status: models.TeacherStatusActive}
	require.NoError(t, db.Create(&teacher).Error)

	subject := models.Subject{Name: "Subject " + code, Code: "SUB-" + code, Credits: 3}
	require.NoError(t, db.Create(&subject).Error)

	period := models.AcademicPeriod{Name: "Period " + code, StartDate: time.Now(), EndDate: time.Now().AddDate(0, 5, 0)}
	require.NoError(t, db.Create(&period).Error)

	course := models.Course{
		SubjectID:        subject.ID,
		TeacherID:        teacher.ID,
		AcademicPeriodID: period.ID,
		CourseCode:       code,
		Status:           models.CourseStatusActive,
	}
	require.NoError(t, NewCourseRepository(db).Create(context.Background(), &course))
	return course
}

func TestCourseRepositoryListPreloadsJoins(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCourseRepository(db)

	seedCourse(t, db, "MATH-101")

	courses, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "SUB-MATH-101", courses[0].Subject.Code)
	require.Equal(t, "TCH-MATH-101", courses[0].Teacher.TeacherCode)
	require.NotEmpty(t, courses[0].Teacher.User.Email)
	require.Equal(t, "Period MATH-101", courses[0].AcademicPeriod.Name)
}

func TestCourseRepositoryDependentCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCourseRepository(db)

	course := seedCourse(t, db, "PHY-201")

	studentUser := seedUser(t, db, "phy-student@example.com", models.RoleStudent)
	student := models.Student{UserID: studentUser.ID, StudentCode: "STU-PHY", Grade: "12C", EnrollmentDate: time.Now(), Status: models.StudentStatusActive}
	require.NoError(t, db.Create(&student).Error)

	enrollment := models.Enrollment{StudentID: student.ID, CourseID: course.ID, Status: models.EnrollmentStatusEnrolled}
	require.NoError(t, db.Create(&enrollment).Error)

	byTeacher, err := repo.CountByTeacher(context.Background(), course.TeacherID)
	require.NoError(t, err)
	require.Equal(t, int64(1), byTeacher)

	bySubject, err := repo.CountBySubject(context.Background(), course.SubjectID)
	require.NoError(t, err)
	require.Equal(t, int64(1), bySubject)

	enrollments, err := NewEnrollmentRepository(db).CountByCourse(context.Background(), course.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), enrollments)
}
