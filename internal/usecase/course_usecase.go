package usecase

import (
	"context"

	"skillhub/internal/domain/entity"
)

// CourseInput defines the mutable fields of a course.
type CourseInput struct {
	Title       string
	Description string
}

// LessonInput defines the mutable fields of a lesson.
type LessonInput struct {
	Title    string
	Content  string
	Position int
}

// CourseUsecase defines the business operations for courses. Courses are
// curated platform content, so mutations require authentication but no
// per-record ownership.
type CourseUsecase interface {
	CreateCourse(ctx context.Context, input CourseInput) (*entity.Course, error)
	GetCourse(ctx context.Context, id string) (*entity.Course, error)
	ListCourses(ctx context.Context) ([]*entity.Course, error)
	UpdateCourse(ctx context.Context, id string, input CourseInput) (*entity.Course, error)
	DeleteCourse(ctx context.Context, id string) error
}

// LessonUsecase defines the business operations for course lessons.
type LessonUsecase interface {
	CreateLesson(ctx context.Context, courseID string, input LessonInput) (*entity.Lesson, error)
	GetLesson(ctx context.Context, id string) (*entity.Lesson, error)
	ListLessons(ctx context.Context, courseID string) ([]*entity.Lesson, error)
	UpdateLesson(ctx context.Context, id string, input LessonInput) (*entity.Lesson, error)
	DeleteLesson(ctx context.Context, id string) error
}
