package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/edunexo/academico-api/internal/dto"
	"github.com/edunexo/academico-api/internal/models"
	"github.com/edunexo/academico-api/internal/repository"
)

func newGradeService(t *testing.T) (GradeService, models.Enrollment) {
	t.Helper()
	db := setupServiceDB(t)

	studentUser := seedAccount(t, db, "grade-student@example.com", models.RoleStudent)
	student := models.Student{UserID: studentUser.ID, StudentCode: "STU-400", Grade: "12A", EnrollmentDate: time.Now(), Status: models.StudentStatusActive}
	require.NoError(t, db.Create(&student).Error)

	teacherUser := seedAccount(t, db, "grade-teacher@example.com", models.RoleTeacher)
	teacher := models.Teacher{UserID: teacherUser.ID, TeacherCode: "TCH-400", HireDate: time.Now(), Status: models.TeacherStatusActive}
	require.NoError(t, db.Create(&teacher).Error)

	subject := models.Subject{Name: "Chemistry", Code: "CHEM-400", Credits: 3}
	require.NoError(t, db.Create(&subject).Error)
	period := models.AcademicPeriod{Name: "2026-1", StartDate: time.Now(), EndDate: time.Now().AddDate(0, 5, 0)}
	require.NoError(t, db.Create(&period).Error)
	course := models.Course{SubjectID: subject.ID, TeacherID: teacher.ID, AcademicPeriodID: period.ID, CourseCode: "CHEM-400-A", Status: models.CourseStatusActive}
	require.NoError(t, db.Create(&course).Error)
	enrollment := models.Enrollment{StudentID: student.ID, CourseID: course.ID, Status: models.EnrollmentStatusEnrolled}
	require.NoError(t, db.Create(&enrollment).Error)

	svc := NewGradeService(
		repository.NewGradeRepository(db),
		repository.NewEnrollmentRepository(db),
		validator.New(validator.WithRequiredStructEnabled()),
		testLogger(),
	)
	return svc, enrollment
}

func floatPtr(v float64) *float64 { return &v }

func TestGradeServiceCreateDefaultsMaxGrade(t *testing.T) {
	svc, enrollment := newGradeService(t)

	grade, err := svc.Create(context.Background(), dto.GradeCreateRequest{
		EnrollmentID:   enrollment.ID,
		AssessmentType: "exam",
		AssessmentName: "Midterm",
		Grade:          floatPtr(87.5),
		AssessmentDate: "2026-03-15",
	})
	require.NoError(t, err)
	require.Equal(t, 87.5, grade.Grade)
	require.Equal(t, float64(100), grade.MaxGrade)
}

func TestGradeServiceCreateOutOfBounds(t *testing.T) {
	svc, enrollment := newGradeService(t)

	_, err := svc.Create(context.Background(), dto.GradeCreateRequest{
		EnrollmentID:   enrollment.ID,
		AssessmentType: "quiz",
		AssessmentName: "Quiz 1",
		Grade:          floatPtr(12),
		MaxGrade:       floatPtr(10),
		AssessmentDate: "2026-03-15",
	})
	require.ErrorIs(t, err, ErrGradeOutOfBounds)
}

func TestGradeServiceCreateUnknownEnrollment(t *testing.T) {
	svc, _ := newGradeService(t)

	_, err := svc.Create(context.Background(), dto.GradeCreateRequest{
		EnrollmentID:   "missing-id",
		AssessmentType: "quiz",
		AssessmentName: "Quiz 1",
		Grade:          floatPtr(5),
		AssessmentDate: "2026-03-15",
	})
	require.ErrorIs(t, err, ErrEnrollmentNotFound)
}

func TestGradeServiceUpdateRechecksBounds(t *testing.T) {
	svc, enrollment := newGradeService(t)

	grade, err := svc.Create(context.Background(), dto.GradeCreateRequest{
		EnrollmentID:   enrollment.ID,
		AssessmentType: "exam",
		AssessmentName: "Final",
		Grade:          floatPtr(70),
		MaxGrade:       floatPtr(100),
		AssessmentDate: "2026-06-20",
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), grade.ID, dto.GradeUpdateRequest{MaxGrade: floatPtr(50)})
	require.ErrorIs(t, err, ErrGradeOutOfBounds)

	updated, err := svc.Update(context.Background(), grade.ID, dto.GradeUpdateRequest{Grade: floatPtr(45), MaxGrade: floatPtr(50)})
	require.NoError(t, err)
	require.Equal(t, float64(45), updated.Grade)
	require.Equal(t, float64(50), updated.MaxGrade)
}

func TestGradeServiceDelete(t *testing.T) {
	svc, enrollment := newGradeService(t)

	grade, err := svc.Create(context.Background(), dto.GradeCreateRequest{
		EnrollmentID:   enrollment.ID,
		AssessmentType: "homework",
		AssessmentName: "HW 1",
		Grade:          floatPtr(9),
		MaxGrade:       floatPtr(10),
		AssessmentDate: "2026-04-01",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), grade.ID))
	require.ErrorIs(t, svc.Delete(context.Background(), grade.ID), ErrGradeNotFound)
}
