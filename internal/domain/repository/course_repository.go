// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"skillhub/internal/domain/entity"
)

// CourseRepository defines the standard operations for course persistence.
type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	FindByID(ctx context.Context, id string) (*entity.Course, error)
	FindAll(ctx context.Context) ([]*entity.Course, error)
	Update(ctx context.Context, course *entity.Course) error
	Delete(ctx context.Context, id string) error
}

// LessonRepository defines the standard operations for lesson persistence.
type LessonRepository interface {
	Create(ctx context.Context, lesson *entity.Lesson) error
	FindByID(ctx context.Context, id string) (*entity.Lesson, error)
	FindByCourseID(ctx context.Context, courseID string) ([]*entity.Lesson, error)
	Update(ctx context.Context, lesson *entity.Lesson) error
	Delete(ctx context.Context, id string) error
}
