package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"skillhub/internal/domain/entity"
	domainerrors "skillhub/internal/domain/errors"
	"skillhub/internal/domain/repository"
	"skillhub/internal/errors"
	"skillhub/internal/infra/persistence/model"
)

// courseRepository implements the repository.CourseRepository interface.
type courseRepository struct {
	coll *mongo.Collection
}

// NewCourseRepository is the constructor for courseRepository.
func NewCourseRepository(db *mongo.Database) repository.CourseRepository {
	return &courseRepository{coll: db.Collection(collCourses)}
}

func (repo *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now

	result, err := repo.coll.InsertOne(ctx, fromCourseDomain(course))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create course")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		course.ID = oid.Hex()
	}

	return nil
}

func (repo *courseRepository) FindByID(ctx context.Context, id string) (*entity.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrResourceNotFound
	}

	var courseM model.CourseModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&courseM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrResourceNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toCourseDomain(&courseM), nil
}

func (repo *courseRepository) FindAll(ctx context.Context) ([]*entity.Course, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var models []model.CourseModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.WithStack(err)
	}

	courses := make([]*entity.Course, 0, len(models))
	for i := range models {
		courses = append(courses, toCourseDomain(&models[i]))
	}

	return courses, nil
}

func (repo *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	oid, err := primitive.ObjectIDFromHex(course.ID)
	if err != nil {
		return repository.ErrResourceNotFound
	}

	course.UpdatedAt = time.Now().UTC()

	courseM := fromCourseDomain(course)
	courseM.ID = oid

	result, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": oid}, courseM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update course")
	}

	if result.MatchedCount == 0 {
		return repository.ErrResourceNotFound
	}

	return nil
}

func (repo *courseRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.coll, id)
}

// lessonRepository implements the repository.LessonRepository interface.
type lessonRepository struct {
	coll *mongo.Collection
}

// NewLessonRepository is the constructor for lessonRepository.
func NewLessonRepository(db *mongo.Database) repository.LessonRepository {
	return &lessonRepository{coll: db.Collection(collLessons)}
}

func (repo *lessonRepository) Create(ctx context.Context, lesson *entity.Lesson) error {
	now := time.Now().UTC()
	lesson.CreatedAt = now
	lesson.UpdatedAt = now

	result, err := repo.coll.InsertOne(ctx, fromLessonDomain(lesson))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create lesson")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		lesson.ID = oid.Hex()
	}

	return nil
}

func (repo *lessonRepository) FindByID(ctx context.Context, id string) (*entity.Lesson, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrResourceNotFound
	}

	var lessonM model.LessonModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&lessonM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrResourceNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toLessonDomain(&lessonM), nil
}

// FindByCourseID returns the lessons of a course sorted by their position.
func (repo *lessonRepository) FindByCourseID(ctx context.Context, courseID string) ([]*entity.Lesson, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})

	cursor, err := repo.coll.Find(ctx, bson.M{"courseId": courseID}, opts)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var models []model.LessonModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.WithStack(err)
	}

	lessons := make([]*entity.Lesson, 0, len(models))
	for i := range models {
		lessons = append(lessons, toLessonDomain(&models[i]))
	}

	return lessons, nil
}

func (repo *lessonRepository) Update(ctx context.Context, lesson *entity.Lesson) error {
	oid, err := primitive.ObjectIDFromHex(lesson.ID)
	if err != nil {
		return repository.ErrResourceNotFound
	}

	lesson.UpdatedAt = time.Now().UTC()

	lessonM := fromLessonDomain(lesson)
	lessonM.ID = oid

	result, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": oid}, lessonM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update lesson")
	}

	if result.MatchedCount == 0 {
		return repository.ErrResourceNotFound
	}

	return nil
}

func (repo *lessonRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.coll, id)
}

// --- Mapper Functions ---

func toCourseDomain(data *model.CourseModel) *entity.Course {
	return &entity.Course{
		ID:          data.ID.Hex(),
		Title:       data.Title,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromCourseDomain(data *entity.Course) *model.CourseModel {
	return &model.CourseModel{
		Title:       data.Title,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toLessonDomain(data *model.LessonModel) *entity.Lesson {
	return &entity.Lesson{
		ID:        data.ID.Hex(),
		CourseID:  data.CourseID,
		Title:     data.Title,
		Content:   data.Content,
		Position:  data.Position,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromLessonDomain(data *entity.Lesson) *model.LessonModel {
	return &model.LessonModel{
		CourseID:  data.CourseID,
		Title:     data.Title,
		Content:   data.Content,
		Position:  data.Position,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
