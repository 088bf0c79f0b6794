package domain

import (
	"time"

	"github.com/google/uuid"
)

// Exercise is a graded task within a course.
type Exercise struct {
	ID            uuid.UUID `json:"id"`
	CourseID      uuid.UUID `json:"courseId"`
	Title         string    `json:"title"`
	MaxScore      int       `json:"maxScore"`
	MinScore      int       `json:"minScore"`
	OrderIndex    int       `json:"orderIndex"`
	Description   string    `json:"description"`
	EstimatedTime string    `json:"estimatedTime"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewExercise creates a validated Exercise with a fresh ID.
func NewExercise(
	courseID uuid.UUID,
	title string,
	maxScore, minScore, orderIndex int,
	description, estimatedTime string,
) (*Exercise, error) {
	now := time.Now().UTC()
	e := &Exercise{
		ID:            uuid.New(),
		CourseID:      courseID,
		Title:         title,
		MaxScore:      maxScore,
		MinScore:      minScore,
		OrderIndex:    orderIndex,
		Description:   description,
		EstimatedTime: estimatedTime,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks the exercise fields.
func (e *Exercise) Validate() error {
	ve := &ValidationError{}

	if e.CourseID == uuid.Nil {
		ve.Add(MissingField(nil, "body", "courseId"))
	}
	CheckString(ve, e.Title, 1, MaxTitleLength, "body", "title")
	CheckString(ve, e.EstimatedTime, 1, MaxEstimatedTimeLength, "body", "estimatedTime")
	checkScores(ve, e.MinScore, e.MaxScore)
	CheckInt(ve, e.OrderIndex, "body", "orderIndex")

	return ve.OrNil()
}

// ExercisePatch holds optional changes to an exercise.
type ExercisePatch struct {
	Title         *string
	MaxScore      *int
	MinScore      *int
	OrderIndex    *int
	Description   *string
	EstimatedTime *string
}

// Apply copies the non-nil fields of p onto e and bumps UpdatedAt.
func (p ExercisePatch) Apply(e *Exercise) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.MaxScore != nil {
		e.MaxScore = *p.MaxScore
	}
	if p.MinScore != nil {
		e.MinScore = *p.MinScore
	}
	if p.OrderIndex != nil {
		e.OrderIndex = *p.OrderIndex
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.EstimatedTime != nil {
		e.EstimatedTime = *p.EstimatedTime
	}
	e.UpdatedAt = time.Now().UTC()
}
