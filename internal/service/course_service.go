package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/platform/logger"
	"github.com/coursekit/course-api/internal/store"
)

// CreateCourseInput carries the fields of a course creation request.
type CreateCourseInput struct {
	Title           string
	MaxScore        int
	MinScore        int
	Description     string
	EstimatedTime   string
	PreviewFileID   uuid.UUID
	CreatedByUserID uuid.UUID
}

// CourseDetails is a course together with the entities it references.
type CourseDetails struct {
	Course        *domain.Course
	PreviewFile   *domain.File
	CreatedByUser *domain.User
}

// CourseService provides course-related operations.
type CourseService interface {
	// ListCourses returns the courses created by userID, oldest first.
	ListCourses(ctx context.Context, userID uuid.UUID) ([]*CourseDetails, error)

	// CreateCourse creates a course. The preview file and the author must
	// exist; otherwise store.ErrFileNotFound or store.ErrUserNotFound is
	// returned.
	CreateCourse(ctx context.Context, in CreateCourseInput) (*CourseDetails, error)

	// GetCourse retrieves a course by ID.
	GetCourse(ctx context.Context, courseID uuid.UUID) (*CourseDetails, error)

	// UpdateCourse applies a partial update.
	UpdateCourse(ctx context.Context, courseID uuid.UUID, patch domain.CoursePatch) (*CourseDetails, error)

	// DeleteCourse removes a course and its exercises.
	DeleteCourse(ctx context.Context, courseID uuid.UUID) error
}

// CourseServiceImpl implements CourseService.
type CourseServiceImpl struct {
	stores store.Stores
	tx     store.Transactor
	logger *slog.Logger
}

var _ CourseService = (*CourseServiceImpl)(nil)

// NewCourseService creates a new CourseService.
func NewCourseService(stores store.Stores, tx store.Transactor, logger *slog.Logger) *CourseServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &CourseServiceImpl{
		stores: stores,
		tx:     tx,
		logger: logger.With("component", "course_service"),
	}
}

// ListCourses implements CourseService.
func (s *CourseServiceImpl) ListCourses(ctx context.Context, userID uuid.UUID) ([]*CourseDetails, error) {
	courses, err := s.stores.Courses.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewServiceError("list_courses", "failed to list courses", err)
	}

	files := make(map[uuid.UUID]*domain.File)
	users := make(map[uuid.UUID]*domain.User)
	result := make([]*CourseDetails, 0, len(courses))
	for _, c := range courses {
		file, ok := files[c.PreviewFileID]
		if !ok {
			if file, err = s.stores.Files.GetByID(ctx, c.PreviewFileID); err != nil {
				return nil, NewServiceError("list_courses", "failed to load preview file", err)
			}
			files[c.PreviewFileID] = file
		}
		user, ok := users[c.CreatedByUserID]
		if !ok {
			if user, err = s.stores.Users.GetByID(ctx, c.CreatedByUserID); err != nil {
				return nil, NewServiceError("list_courses", "failed to load author", err)
			}
			users[c.CreatedByUserID] = user
		}
		result = append(result, &CourseDetails{Course: c, PreviewFile: file, CreatedByUser: user})
	}
	return result, nil
}

// CreateCourse implements CourseService.
func (s *CourseServiceImpl) CreateCourse(ctx context.Context, in CreateCourseInput) (*CourseDetails, error) {
	course, err := domain.NewCourse(in.Title, in.MaxScore, in.MinScore, in.Description,
		in.EstimatedTime, in.PreviewFileID, in.CreatedByUserID)
	if err != nil {
		return nil, err
	}

	var details *CourseDetails
	err = s.tx.RunInTx(ctx, func(ctx context.Context, tx store.Stores) error {
		file, err := tx.Files.GetByID(ctx, course.PreviewFileID)
		if err != nil {
			return err
		}
		user, err := tx.Users.GetByID(ctx, course.CreatedByUserID)
		if err != nil {
			return err
		}
		if err := tx.Courses.Create(ctx, course); err != nil {
			return err
		}
		details = &CourseDetails{Course: course, PreviewFile: file, CreatedByUser: user}
		return nil
	})
	if err != nil {
		if !isExpected(err) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to create course", "error", err)
		}
		return nil, NewServiceError("create_course", "failed to create course", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("course created",
		"course_id", course.ID, "user_id", course.CreatedByUserID)
	return details, nil
}

// GetCourse implements CourseService.
func (s *CourseServiceImpl) GetCourse(ctx context.Context, courseID uuid.UUID) (*CourseDetails, error) {
	course, err := s.stores.Courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, NewServiceError("get_course", "failed to retrieve course", err)
	}
	details, err := s.expand(ctx, s.stores, course)
	if err != nil {
		return nil, NewServiceError("get_course", "failed to load course references", err)
	}
	return details, nil
}

// UpdateCourse implements CourseService.
func (s *CourseServiceImpl) UpdateCourse(
	ctx context.Context,
	courseID uuid.UUID,
	patch domain.CoursePatch,
) (*CourseDetails, error) {
	var details *CourseDetails
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx store.Stores) error {
		course, err := tx.Courses.GetByID(ctx, courseID)
		if err != nil {
			return err
		}
		patch.Apply(course)
		if err := course.Validate(); err != nil {
			return err
		}
		if err := tx.Courses.Update(ctx, course); err != nil {
			return err
		}
		details, err = s.expand(ctx, tx, course)
		return err
	})
	if err != nil {
		return nil, NewServiceError("update_course", "failed to update course", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("course updated", "course_id", courseID)
	return details, nil
}

// DeleteCourse implements CourseService.
func (s *CourseServiceImpl) DeleteCourse(ctx context.Context, courseID uuid.UUID) error {
	if err := s.stores.Courses.Delete(ctx, courseID); err != nil {
		return NewServiceError("delete_course", "failed to delete course", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("course deleted", "course_id", courseID)
	return nil
}

func (s *CourseServiceImpl) expand(ctx context.Context, stores store.Stores, c *domain.Course) (*CourseDetails, error) {
	file, err := stores.Files.GetByID(ctx, c.PreviewFileID)
	if err != nil {
		return nil, err
	}
	user, err := stores.Users.GetByID(ctx, c.CreatedByUserID)
	if err != nil {
		return nil, err
	}
	return &CourseDetails{Course: c, PreviewFile: file, CreatedByUser: user}, nil
}
