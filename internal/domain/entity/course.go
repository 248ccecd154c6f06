// Package entity contains the core business objects of the project.
package entity

import "time"

// Course is a container for an ordered set of lessons.
type Course struct {
	ID          string    // Hex document ID.
	Title       string    // Course title.
	Description string    // Course summary.
	CreatedAt   time.Time // Timestamp of creation.
	UpdatedAt   time.Time // Timestamp of the last edit.
}

// Lesson is a single unit of course content.
type Lesson struct {
	ID        string    // Hex document ID.
	CourseID  string    // The course this lesson belongs to.
	Title     string    // Lesson title.
	Content   string    // Lesson body.
	Position  int       // Order within the course.
	CreatedAt time.Time // Timestamp of creation.
	UpdatedAt time.Time // Timestamp of the last edit.
}
