package handler

import (
	"net/http"
	"time"

	"skillhub/internal/delivery/http/response"
	"skillhub/internal/domain/entity"
	"skillhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CourseHandler holds dependencies for course and lesson handlers.
type CourseHandler struct {
	courseUC usecase.CourseUsecase
	lessonUC usecase.LessonUsecase
}

// NewCourseHandler is the constructor for CourseHandler, injected by Fx.
func NewCourseHandler(courseUC usecase.CourseUsecase, lessonUC usecase.LessonUsecase) *CourseHandler {
	return &CourseHandler{courseUC: courseUC, lessonUC: lessonUC}
}

type courseRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type lessonRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Position int    `json:"position" validate:"gte=0"`
}

type courseView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type lessonView struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"courseId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCourseView(course *entity.Course) courseView {
	return courseView{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		CreatedAt:   course.CreatedAt,
		UpdatedAt:   course.UpdatedAt,
	}
}

func toLessonView(lesson *entity.Lesson) lessonView {
	return lessonView{
		ID:        lesson.ID,
		CourseID:  lesson.CourseID,
		Title:     lesson.Title,
		Content:   lesson.Content,
		Position:  lesson.Position,
		CreatedAt: lesson.CreatedAt,
		UpdatedAt: lesson.UpdatedAt,
	}
}

// CreateCourse handles creating a course.
func (h *CourseHandler) CreateCourse(c echo.Context) error {
	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid course input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	course, err := h.courseUC.CreateCourse(c.Request().Context(), usecase.CourseInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCourseView(course), "Course created")
}

// GetCourse returns a single course.
func (h *CourseHandler) GetCourse(c echo.Context) error {
	course, err := h.courseUC.GetCourse(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCourseView(course), "")
}

// ListCourses returns all courses.
func (h *CourseHandler) ListCourses(c echo.Context) error {
	courses, err := h.courseUC.ListCourses(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]courseView, 0, len(courses))
	for _, course := range courses {
		views = append(views, toCourseView(course))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// UpdateCourse handles editing a course.
func (h *CourseHandler) UpdateCourse(c echo.Context) error {
	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid course input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	course, err := h.courseUC.UpdateCourse(c.Request().Context(), c.Param("id"), usecase.CourseInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCourseView(course), "Course updated")
}

// DeleteCourse handles removing a course.
func (h *CourseHandler) DeleteCourse(c echo.Context) error {
	if err := h.courseUC.DeleteCourse(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Course deleted")
}

// CreateLesson handles adding a lesson to a course.
func (h *CourseHandler) CreateLesson(c echo.Context) error {
	var req lessonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lesson input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lesson, err := h.lessonUC.CreateLesson(c.Request().Context(), c.Param("id"), usecase.LessonInput{
		Title:    req.Title,
		Content:  req.Content,
		Position: req.Position,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toLessonView(lesson), "Lesson created")
}

// ListLessons returns the lessons of a course in position order.
func (h *CourseHandler) ListLessons(c echo.Context) error {
	lessons, err := h.lessonUC.ListLessons(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]lessonView, 0, len(lessons))
	for _, lesson := range lessons {
		views = append(views, toLessonView(lesson))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// GetLesson returns a single lesson.
func (h *CourseHandler) GetLesson(c echo.Context) error {
	lesson, err := h.lessonUC.GetLesson(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLessonView(lesson), "")
}

// UpdateLesson handles editing a lesson.
func (h *CourseHandler) UpdateLesson(c echo.Context) error {
	var req lessonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lesson input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lesson, err := h.lessonUC.UpdateLesson(c.Request().Context(), c.Param("id"), usecase.LessonInput{
		Title:    req.Title,
		Content:  req.Content,
		Position: req.Position,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLessonView(lesson), "Lesson updated")
}

// DeleteLesson handles removing a lesson.
func (h *CourseHandler) DeleteLesson(c echo.Context) error {
	if err := h.lessonUC.DeleteLesson(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Lesson deleted")
}
