package impl

import (
	"context"
	"log/slog"

	deliverycontext "skillhub/internal/delivery/context"
	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/repository"
	"skillhub/internal/errors"
	"skillhub/internal/usecase"

	"go.uber.org/fx"
)

// courseService implements the CourseUsecase and LessonUsecase interfaces.
// Courses carry no per-record owner, so mutations are gated by
// authentication alone.
type courseService struct {
	courseRepo repository.CourseRepository
	lessonRepo repository.LessonRepository
	logger     *slog.Logger
}

// CourseServiceParams holds dependencies for courseService, injected by Fx.
type CourseServiceParams struct {
	fx.In

	CourseRepo repository.CourseRepository
	LessonRepo repository.LessonRepository
	Logger     *slog.Logger
}

// CourseServiceResult exposes the two usecase facets of courseService.
type CourseServiceResult struct {
	fx.Out

	CourseUsecase usecase.CourseUsecase
	LessonUsecase usecase.LessonUsecase
}

// NewCourseService is the constructor for courseService.
func NewCourseService(params CourseServiceParams) CourseServiceResult {
	srv := &courseService{
		courseRepo: params.CourseRepo,
		lessonRepo: params.LessonRepo,
		logger:     params.Logger,
	}

	return CourseServiceResult{CourseUsecase: srv, LessonUsecase: srv}
}

func (srv *courseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *courseService) CreateCourse(ctx context.Context, input usecase.CourseInput) (*entity.Course, error) {
	course := &entity.Course{
		Title:       input.Title,
		Description: input.Description,
	}

	if err := srv.courseRepo.Create(ctx, course); err != nil {
		return nil, errors.Wrap(err, "failed to create course")
	}

	srv.log(ctx).Debug("Course created", slog.String("courseID", course.ID))

	return course, nil
}

func (srv *courseService) GetCourse(ctx context.Context, id string) (*entity.Course, error) {
	course, err := srv.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapResourceErr(err, "course")
	}

	return course, nil
}

func (srv *courseService) ListCourses(ctx context.Context) ([]*entity.Course, error) {
	courses, err := srv.courseRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	return courses, nil
}

func (srv *courseService) UpdateCourse(ctx context.Context, id string, input usecase.CourseInput) (*entity.Course, error) {
	course, err := srv.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapResourceErr(err, "course")
	}

	course.Title = input.Title
	course.Description = input.Description

	if err := srv.courseRepo.Update(ctx, course); err != nil {
		return nil, mapResourceErr(err, "course")
	}

	return course, nil
}

func (srv *courseService) DeleteCourse(ctx context.Context, id string) error {
	if err := srv.courseRepo.Delete(ctx, id); err != nil {
		return mapResourceErr(err, "course")
	}

	return nil
}

// CreateLesson verifies the parent course exists before writing the lesson.
func (srv *courseService) CreateLesson(ctx context.Context, courseID string, input usecase.LessonInput) (*entity.Lesson, error) {
	if _, err := srv.courseRepo.FindByID(ctx, courseID); err != nil {
		return nil, mapResourceErr(err, "course")
	}

	lesson := &entity.Lesson{
		CourseID: courseID,
		Title:    input.Title,
		Content:  input.Content,
		Position: input.Position,
	}

	if err := srv.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, errors.Wrap(err, "failed to create lesson")
	}

	return lesson, nil
}

func (srv *courseService) GetLesson(ctx context.Context, id string) (*entity.Lesson, error) {
	lesson, err := srv.lessonRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapResourceErr(err, "lesson")
	}

	return lesson, nil
}

func (srv *courseService) ListLessons(ctx context.Context, courseID string) ([]*entity.Lesson, error) {
	lessons, err := srv.lessonRepo.FindByCourseID(ctx, courseID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list lessons")
	}

	return lessons, nil
}

func (srv *courseService) UpdateLesson(ctx context.Context, id string, input usecase.LessonInput) (*entity.Lesson, error) {
	lesson, err := srv.lessonRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapResourceErr(err, "lesson")
	}

	lesson.Title = input.Title
	lesson.Content = input.Content
	lesson.Position = input.Position

	if err := srv.lessonRepo.Update(ctx, lesson); err != nil {
		return nil, mapResourceErr(err, "lesson")
	}

	return lesson, nil
}

func (srv *courseService) DeleteLesson(ctx context.Context, id string) error {
	if err := srv.lessonRepo.Delete(ctx, id); err != nil {
		return mapResourceErr(err, "lesson")
	}

	return nil
}
