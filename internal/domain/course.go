package domain

import (
	"time"

	"github.com/google/uuid"
)

// Field limits shared by courses and exercises.
const (
	MaxTitleLength         = 250
	MaxEstimatedTimeLength = 50
)

// Course is a unit of study owned by the user who created it.
type Course struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	MaxScore        int       `json:"maxScore"`
	MinScore        int       `json:"minScore"`
	Description     string    `json:"description"`
	EstimatedTime   string    `json:"estimatedTime"`
	PreviewFileID   uuid.UUID `json:"previewFileId"`
	CreatedByUserID uuid.UUID `json:"createdByUserId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NewCourse creates a validated Course with a fresh ID.
func NewCourse(
	title string,
	maxScore, minScore int,
	description, estimatedTime string,
	previewFileID, createdByUserID uuid.UUID,
) (*Course, error) {
	now := time.Now().UTC()
	c := &Course{
		ID:              uuid.New(),
		Title:           title,
		MaxScore:        maxScore,
		MinScore:        minScore,
		Description:     description,
		EstimatedTime:   estimatedTime,
		PreviewFileID:   previewFileID,
		CreatedByUserID: createdByUserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the course fields.
func (c *Course) Validate() error {
	ve := &ValidationError{}

	CheckString(ve, c.Title, 1, MaxTitleLength, "body", "title")
	CheckString(ve, c.EstimatedTime, 1, MaxEstimatedTimeLength, "body", "estimatedTime")
	checkScores(ve, c.MinScore, c.MaxScore)

	if c.PreviewFileID == uuid.Nil {
		ve.Add(MissingField(nil, "body", "previewFileId"))
	}
	if c.CreatedByUserID == uuid.Nil {
		ve.Add(MissingField(nil, "body", "createdByUserId"))
	}

	return ve.OrNil()
}

// CoursePatch holds optional changes to a course.
type CoursePatch struct {
	Title         *string
	MaxScore      *int
	MinScore      *int
	Description   *string
	EstimatedTime *string
}

// Apply copies the non-nil fields of p onto c and bumps UpdatedAt.
func (p CoursePatch) Apply(c *Course) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.MaxScore != nil {
		c.MaxScore = *p.MaxScore
	}
	if p.MinScore != nil {
		c.MinScore = *p.MinScore
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.EstimatedTime != nil {
		c.EstimatedTime = *p.EstimatedTime
	}
	c.UpdatedAt = time.Now().UTC()
}

func checkScores(ve *ValidationError, minScore, maxScore int) {
	CheckInt(ve, minScore, "body", "minScore")
	CheckInt(ve, maxScore, "body", "maxScore")
	if minScore > maxScore {
		ve.Add(ValueError(minScore, "minScore must not exceed maxScore", "body", "minScore"))
	}
}
