package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"employee-admin/internal/blobstore"
	"employee-admin/internal/models"
)

// EmployeeStore is the persistence boundary the service depends on.
type EmployeeStore interface {
	List(ctx context.Context) ([]models.Employee, error)
	GetByID(ctx context.Context, id string) (models.Employee, error)
	Insert(ctx context.Context, e *models.Employee) error
	Update(ctx context.Context, e *models.Employee) error
	SetStatus(ctx context.Context, id string, status models.Status) error
	Delete(ctx context.Context, id string) error
}

// Uploader is the blob store boundary.
type Uploader interface {
	Upload(ctx context.Context, filename string, content io.Reader, t blobstore.Transform) (string, error)
}

// ImageUpload is an incoming profile image buffer.
type ImageUpload struct {
	Filename string
	Content  io.Reader
	Size     int64
}

// CreateEmployeeInput carries a validated-add request. ImageID may be
// pre-uploaded by the caller; an attached image takes precedence.
type CreateEmployeeInput struct {
	Name        string
	Email       string
	Mobile      string
	Designation string
	Gender      string
	Course      []string
	ImageID     string
}

// UpdateEmployeeInput is an explicit patch: nil means "retain the
// prior value". A provided value must pass full validation, so fields
// can never be blanked.
type UpdateEmployeeInput struct {
	Name        *string
	Email       *string
	Mobile      *string
	Designation *string
	Gender      *string
	Course      []string
	ImageID     *string
}

// EmployeeService is the business-rule layer for the employee record
// lifecycle: validation, uniqueness, status workflow, image upload
// orchestration.
type EmployeeService struct {
	store EmployeeStore
	blobs Uploader
	log   *zap.Logger
}

func NewEmployeeService(store EmployeeStore, blobs Uploader, log *zap.Logger) *EmployeeService {
	if log == nil {
		log = zap.NewNop()
	}
	return &EmployeeService{store: store, blobs: blobs, log: log}
}

// List returns all employees; an empty result is a valid outcome.
func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	return s.store.List(ctx)
}

// Get returns one employee or models.ErrNotFound.
func (s *EmployeeService) Get(ctx context.Context, id string) (models.Employee, error) {
	return s.store.GetByID(ctx, id)
}

// Create validates the input, uploads the image when one is attached,
// then inserts the record with status Active. An upload failure aborts
// the whole operation; no partial employee is created. Duplicate email
// or mobile surfaces from the storage layer's unique indexes.
func (s *EmployeeService) Create(ctx context.Context, in CreateEmployeeInput, image *ImageUpload) (models.Employee, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Mobile = strings.TrimSpace(in.Mobile)

	if err := validateCreate(in, image); err != nil {
		return models.Employee{}, err
	}

	imageID := in.ImageID
	if image != nil {
		id, err := s.blobs.Upload(ctx, image.Filename, image.Content, blobstore.ProfileTransform)
		if err != nil {
			return models.Employee{}, err
		}
		imageID = id
	}

	e := models.Employee{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Email:       in.Email,
		Mobile:      in.Mobile,
		Designation: in.Designation,
		Gender:      in.Gender,
		Course:      in.Course,
		ImageID:     imageID,
		Status:      models.StatusActive,
	}
	if err := s.store.Insert(ctx, &e); err != nil {
		return models.Employee{}, err
	}

	s.log.Info("employee created", zap.String("id", e.ID), zap.String("email", e.Email))
	return e, nil
}

// Update applies a partial patch. Fields left nil keep their prior
// values; a new image, when supplied, is uploaded before anything is
// persisted.
func (s *EmployeeService) Update(ctx context.Context, id string, in UpdateEmployeeInput, image *ImageUpload) (models.Employee, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return models.Employee{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return models.Employee{}, fmt.Errorf("%w: name cannot be empty", models.ErrValidation)
		}
		existing.Name = name
	}
	if in.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*in.Email))
		if !models.IsValidEmail(email) {
			return models.Employee{}, fmt.Errorf("%w: invalid email address", models.ErrValidation)
		}
		existing.Email = email
	}
	if in.Mobile != nil {
		mobile := strings.TrimSpace(*in.Mobile)
		if !models.IsValidMobile(mobile) {
			return models.Employee{}, fmt.Errorf("%w: mobile must be at least 10 digits", models.ErrValidation)
		}
		existing.Mobile = mobile
	}
	if in.Designation != nil {
		if !models.IsValidDesignation(*in.Designation) {
			return models.Employee{}, fmt.Errorf("%w: designation must be one of HR, Manager, Sales", models.ErrValidation)
		}
		existing.Designation = *in.Designation
	}
	if in.Gender != nil {
		if !models.IsValidGender(*in.Gender) {
			return models.Employee{}, fmt.Errorf("%w: gender must be M or F", models.ErrValidation)
		}
		existing.Gender = *in.Gender
	}
	if in.Course != nil {
		if err := validateCourses(in.Course); err != nil {
			return models.Employee{}, err
		}
		existing.Course = in.Course
	}

	if image != nil {
		imageID, err := s.blobs.Upload(ctx, image.Filename, image.Content, blobstore.ProfileTransform)
		if err != nil {
			return models.Employee{}, err
		}
		existing.ImageID = imageID
	} else if in.ImageID != nil && *in.ImageID != "" {
		existing.ImageID = *in.ImageID
	}

	if err := s.store.Update(ctx, &existing); err != nil {
		return models.Employee{}, err
	}
	return existing, nil
}

// SetStatus overwrites the status field. Both transitions are legal
// from either state; setting the current value is a no-op success.
func (s *EmployeeService) SetStatus(ctx context.Context, id string, status models.Status) error {
	if !models.IsValidStatus(status) {
		return fmt.Errorf("%w: status must be Active or Deactive", models.ErrValidation)
	}
	return s.store.SetStatus(ctx, id, status)
}

// Delete physically removes the record.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func validateCreate(in CreateEmployeeInput, image *ImageUpload) error {
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", models.ErrValidation)
	}
	if !models.IsValidEmail(in.Email) {
		return fmt.Errorf("%w: invalid email address", models.ErrValidation)
	}
	if !models.IsValidMobile(in.Mobile) {
		return fmt.Errorf("%w: mobile must be at least 10 digits", models.ErrValidation)
	}
	if !models.IsValidDesignation(in.Designation) {
		return fmt.Errorf("%w: designation must be one of HR, Manager, Sales", models.ErrValidation)
	}
	if !models.IsValidGender(in.Gender) {
		return fmt.Errorf("%w: gender must be M or F", models.ErrValidation)
	}
	if err := validateCourses(in.Course); err != nil {
		return err
	}
	if image == nil && in.ImageID == "" {
		return fmt.Errorf("%w: profile image is required", models.ErrValidation)
	}
	return nil
}

func validateCourses(courses []string) error {
	if len(courses) == 0 {
		return fmt.Errorf("%w: at least one course is required", models.ErrValidation)
	}
	for _, c := range courses {
		if !models.IsValidCourse(c) {
			return fmt.Errorf("%w: course must be one of MCA, BCA, BSC", models.ErrValidation)
		}
	}
	return nil
}
