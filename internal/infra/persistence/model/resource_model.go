package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionModel mirrors the 'questions' collection.
type QuestionModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Owner       string             `bson:"owner"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// AnswerModel mirrors the 'answers' collection.
type AnswerModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	QuestionID string             `bson:"questionId"`
	Content    string             `bson:"content"`
	Owner      string             `bson:"owner"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

// TutorialModel mirrors the 'tutorials' collection.
type TutorialModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Tags      []string           `bson:"tags"`
	Owner     string             `bson:"owner"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// ChallengeModel mirrors the 'challenges' collection.
type ChallengeModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Owner       string             `bson:"owner"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

// CommentModel mirrors the 'comments' collection.
type CommentModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ChallengeID string             `bson:"challengeId"`
	Content     string             `bson:"content"`
	Owner       string             `bson:"owner"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// CourseModel mirrors the 'courses' collection.
type CourseModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// LessonModel mirrors the 'lessons' collection.
type LessonModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	CourseID  string             `bson:"courseId"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Position  int                `bson:"position"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}
