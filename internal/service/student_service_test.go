package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/edunexo/academico-api/internal/dto"
	"github.com/edunexo/academico-api/internal/models"
	"github.com/edunexo/academico-api/internal/repository"
)

func newStudentService(t *testing.T) (StudentService, *gorm.DB) {
	t.Helper()
	db := setupServiceDB(t)
	svc := NewStudentService(
		repository.NewStudentRepository(db),
		repository.NewUserRepository(db),
		repository.NewEnrollmentRepository(db),
		validator.New(validator.WithRequiredStructEnabled()),
		testLogger(),
	)
	return svc, db
}

func seedAccount(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()
	user := models.User{Email: email, Password: "hashed", Name: "Seeded", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestStudentServiceCreate(t *testing.T) {
	svc, db := newStudentService(t)
	user := seedAccount(t, db, "carla@example.com", models.RoleStudent)

	student, err := svc.Create(context.Background(), dto.StudentCreateRequest{
		UserID:         user.ID,
		StudentCode:    "STU-301",
		Grade:          "10A",
		EnrollmentDate: "2026-02-01",
	})
	require.NoError(t, err)
	require.Equal(t, "carla@example.com", student.User.Email)
	require.Equal(t, models.StudentStatusActive, student.Status)
	require.Equal(t, 2026, student.EnrollmentDate.Year())
}

func TestStudentServiceCreateRoleMismatch(t *testing.T) {
	svc, db := newStudentService(t)
	user := seedAccount(t, db, "teach@example.com", models.RoleTeacher)

	_, err := svc.Create(context.Background(), dto.StudentCreateRequest{
		UserID:         user.ID,
		StudentCode:    "STU-302",
		Grade:          "10A",
		EnrollmentDate: "2026-02-01",
	})
	require.ErrorIs(t, err, ErrProfileRoleMismatch)
}

func TestStudentServiceCreateDuplicateCode(t *testing.T) {
	svc, db := newStudentService(t)
	first := seedAccount(t, db, "one@example.com", models.RoleStudent)
	second := seedAccount(t, db, "two@example.com", models.RoleStudent)

	_, err := svc.Create(context.Background(), dto.StudentCreateRequest{
		UserID:         first.ID,
		StudentCode:    "STU-303",
		Grade:          "10A",
		EnrollmentDate: "2026-02-01",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.StudentCreateRequest{
		UserID:         second.ID,
		StudentCode:    "STU-303",
		Grade:          "10B",
		EnrollmentDate: "2026-02-01",
	})
	require.ErrorIs(t, err, ErrDuplicateStudentCode)
}

func TestStudentServiceDeleteGuardedByEnrollments(t *testing.T) {
	svc, db := newStudentService(t)
	user := seedAccount(t, db, "enrolled@example.com", models.RoleStudent)

	student, err := svc.Create(context.Background(), dto.StudentCreateRequest{
		UserID:         user.ID,
		StudentCode:    "STU-304",
		Grade:          "11A",
		EnrollmentDate: "2026-02-01",
	})
	require.NoError(t, err)

	teacherUser := seedAccount(t, db, "course-teacher@example.com", models.RoleTeacher)
	teacher := models.Teacher{UserID: teacherUser.ID, TeacherCode: "TCH-304", HireDate: time.Now(), Status: models.TeacherStatusActive}
	require.NoError(t, db.Create(&teacher).Error)
	subject := models.Subject{Name: "Algebra", Code: "ALG-304", Credits: 4}
	require.NoError(t, db.Create(&subject).Error)
	period := models.AcademicPeriod{Name: "2026-1", StartDate: time.Now(), EndDate: time.Now().AddDate(0, 5, 0)}
	require.NoError(t, db.Create(&period).Error)
	course := models.Course{SubjectID: subject.ID, TeacherID: teacher.ID, AcademicPeriodID: period.ID, CourseCode: "ALG-304-A", Status: models.CourseStatusActive}
	require.NoError(t, db.Create(&course).Error)
	enrollment := models.Enrollment{StudentID: student.ID, CourseID: course.ID, Status: models.EnrollmentStatusEnrolled}
	require.NoError(t, db.Create(&enrollment).Error)

	err = svc.Delete(context.Background(), student.ID)
	require.ErrorIs(t, err, ErrStudentHasEnrollments)

	require.NoError(t, db.Delete(&enrollment).Error)
	require.NoError(t, svc.Delete(context.Background(), student.ID))

	_, err = svc.Get(context.Background(), student.ID)
	require.ErrorIs(t, err, ErrStudentNotFound)
}
