package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"employee-admin/internal/models"
	"employee-admin/internal/service"
)

type EmployeeHandler struct {
	svc *service.EmployeeService
	log *zap.Logger
}

func NewEmployeeHandler(svc *service.EmployeeService, log *zap.Logger) *EmployeeHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &EmployeeHandler{svc: svc, log: log}
}

// GET /employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.log.Error("list employees failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve employees"})
		return
	}
	if len(employees) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No employees found"})
		return
	}
	c.JSON(http.StatusOK, employees)
}

// GET /employees/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	e, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employee": e})
}

type createEmployeeDTO struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required"`
	Mobile      string   `json:"mobile" binding:"required"`
	Designation string   `json:"designation" binding:"required"`
	Gender      string   `json:"gender" binding:"required"`
	Course      []string `json:"course" binding:"required"`
	ImageID     string   `json:"imageId"`
}

// POST /employees
// Accepts multipart/form-data (fields plus an optional profile-image
// file, uploaded server-side) or JSON with a pre-uploaded imageId.
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	in, image, err := h.bindCreate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	e, err := h.svc.Create(c.Request.Context(), in, image)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":      e.ID,
		"message": "Employee added successfully",
	})
}

func (h *EmployeeHandler) bindCreate(c *gin.Context) (service.CreateEmployeeInput, *service.ImageUpload, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		in := service.CreateEmployeeInput{
			Name:        c.PostForm("name"),
			Email:       c.PostForm("email"),
			Mobile:      c.PostForm("mobile"),
			Designation: c.PostForm("designation"),
			Gender:      c.PostForm("gender"),
			Course:      c.PostFormArray("course"),
			ImageID:     c.PostForm("imageId"),
		}
		image, err := formImage(c)
		if err != nil {
			return service.CreateEmployeeInput{}, nil, err
		}
		return in, image, nil
	}

	var dto createEmployeeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		return service.CreateEmployeeInput{}, nil, err
	}
	return service.CreateEmployeeInput{
		Name:        dto.Name,
		Email:       dto.Email,
		Mobile:      dto.Mobile,
		Designation: dto.Designation,
		Gender:      dto.Gender,
		Course:      dto.Course,
		ImageID:     dto.ImageID,
	}, nil, nil
}

type updateEmployeeDTO struct {
	Name        *string  `json:"name"`
	Email       *string  `json:"email"`
	Mobile      *string  `json:"mobile"`
	Designation *string  `json:"designation"`
	Gender      *string  `json:"gender"`
	Course      []string `json:"course"`
	ImageID     *string  `json:"imageId"`
}

// PUT /employees/:id
// Fields absent from the body keep their prior values.
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var (
		in    service.UpdateEmployeeInput
		image *service.ImageUpload
	)

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		in = bindUpdateForm(c)
		img, err := formImage(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		image = img
	} else {
		var dto updateEmployeeDTO
		if err := c.ShouldBindJSON(&dto); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		in = service.UpdateEmployeeInput{
			Name:        dto.Name,
			Email:       dto.Email,
			Mobile:      dto.Mobile,
			Designation: dto.Designation,
			Gender:      dto.Gender,
			Course:      dto.Course,
			ImageID:     dto.ImageID,
		}
	}

	e, err := h.svc.Update(c.Request.Context(), c.Param("id"), in, image)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"updatedEmployee": e,
		"message":         "Employee updated successfully",
	})
}

// PUT /employees/:id/:status
func (h *EmployeeHandler) UpdateStatus(c *gin.Context) {
	status := models.Status(c.Param("status"))
	if err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), status); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee status updated successfully"})
}

// DELETE /employees/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}

func bindUpdateForm(c *gin.Context) service.UpdateEmployeeInput {
	var in service.UpdateEmployeeInput
	if v, ok := c.GetPostForm("name"); ok {
		in.Name = &v
	}
	if v, ok := c.GetPostForm("email"); ok {
		in.Email = &v
	}
	if v, ok := c.GetPostForm("mobile"); ok {
		in.Mobile = &v
	}
	if v, ok := c.GetPostForm("designation"); ok {
		in.Designation = &v
	}
	if v, ok := c.GetPostForm("gender"); ok {
		in.Gender = &v
	}
	if vs, ok := c.GetPostFormArray("course"); ok {
		in.Course = vs
	}
	if v, ok := c.GetPostForm("imageId"); ok {
		in.ImageID = &v
	}
	return in
}

// formImage extracts the optional profile-image part. A missing part
// is not an error; a zero-byte file is ignored like the original did.
func formImage(c *gin.Context) (*service.ImageUpload, error) {
	fh, err := c.FormFile("profile-image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	if fh.Size <= 0 {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	return &service.ImageUpload{Filename: fh.Filename, Content: f, Size: fh.Size}, nil
}

// writeError maps domain errors to HTTP statuses. Store and provider
// failures stay generic toward the client; detail goes to the log.
func (h *EmployeeHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
	case errors.Is(err, models.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
	case errors.Is(err, models.ErrDuplicateMobile):
		c.JSON(http.StatusConflict, gin.H{"error": "Mobile number already exists"})
	case errors.Is(err, models.ErrUploadFailed):
		h.log.Error("image upload failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to upload image"})
	default:
		h.log.Error("employee operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
