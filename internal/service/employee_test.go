package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"employee-admin/internal/blobstore"
	"employee-admin/internal/models"
)

type fakeEmployeeStore struct {
	employees map[string]*models.Employee
	order     []string
	inserts   int
}

func newFakeEmployeeStore() *fakeEmployeeStore {
	return &fakeEmployeeStore{employees: make(map[string]*models.Employee)}
}

func (f *fakeEmployeeStore) List(_ context.Context) ([]models.Employee, error) {
	out := make([]models.Employee, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, *f.employees[id])
	}
	return out, nil
}

func (f *fakeEmployeeStore) GetByID(_ context.Context, id string) (models.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return models.Employee{}, models.ErrNotFound
	}
	return *e, nil
}

// Insert mirrors the database's unique indexes on email and mobile.
func (f *fakeEmployeeStore) Insert(_ context.Context, e *models.Employee) error {
	f.inserts++
	for _, existing := range f.employees {
		if existing.Email == e.Email {
			return models.ErrDuplicateEmail
		}
		if existing.Mobile == e.Mobile {
			return models.ErrDuplicateMobile
		}
	}
	cp := *e
	f.employees[e.ID] = &cp
	f.order = append(f.order, e.ID)
	return nil
}

func (f *fakeEmployeeStore) Update(_ context.Context, e *models.Employee) error {
	existing, ok := f.employees[e.ID]
	if !ok {
		return models.ErrNotFound
	}
	*existing = *e
	return nil
}

func (f *fakeEmployeeStore) SetStatus(_ context.Context, id string, status models.Status) error {
	e, ok := f.employees[id]
	if !ok {
		return models.ErrNotFound
	}
	e.Status = status
	return nil
}

func (f *fakeEmployeeStore) Delete(_ context.Context, id string) error {
	if _, ok := f.employees[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.employees, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeUploader struct {
	id      string
	err     error
	uploads int
}

func (f *fakeUploader) Upload(_ context.Context, _ string, content io.Reader, _ blobstore.Transform) (string, error) {
	f.uploads++
	if f.err != nil {
		return "", f.err
	}
	io.Copy(io.Discard, content)
	return f.id, nil
}

func validInput() CreateEmployeeInput {
	return CreateEmployeeInput{
		Name:        "Asha",
		Email:       "a@x.com",
		Mobile:      "9876543210",
		Designation: "HR",
		Gender:      "F",
		Course:      []string{"MCA"},
	}
}

func TestCreateWithImage(t *testing.T) {
	store := newFakeEmployeeStore()
	blobs := &fakeUploader{id: "img-1"}
	svc := NewEmployeeService(store, blobs, nil)

	img := &ImageUpload{Filename: "asha.png", Content: strings.NewReader("bytes"), Size: 5}
	e, err := svc.Create(context.Background(), validInput(), img)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if e.ID == "" {
		t.Error("expected generated id")
	}
	if e.Status != models.StatusActive {
		t.Errorf("expected status Active, got %s", e.Status)
	}
	if e.ImageID != "img-1" {
		t.Errorf("expected image id from upload, got %q", e.ImageID)
	}
	if blobs.uploads != 1 {
		t.Errorf("expected one upload, got %d", blobs.uploads)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	store := newFakeEmployeeStore()
	svc := NewEmployeeService(store, &fakeUploader{id: "img-1"}, nil)

	in := validInput()
	in.ImageID = "img-1"
	if _, err := svc.Create(context.Background(), in, nil); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}

	second := validInput()
	second.Mobile = "9876543211"
	second.ImageID = "img-2"
	_, err := svc.Create(context.Background(), second, nil)
	if !errors.Is(err, models.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if len(store.employees) != 1 {
		t.Fatalf("expected no second record, have %d", len(store.employees))
	}
}

func TestCreateRejectsBadMobile(t *testing.T) {
	cases := []string{"12345", "98765432a0", "", "987-6543210"}
	for _, mobile := range cases {
		t.Run(fmt.Sprintf("mobile=%q", mobile), func(t *testing.T) {
			store := newFakeEmployeeStore()
			svc := NewEmployeeService(store, &fakeUploader{id: "img"}, nil)

			in := validInput()
			in.Mobile = mobile
			in.ImageID = "img-1"
			_, err := svc.Create(context.Background(), in, nil)
			if !errors.Is(err, models.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if store.inserts != 0 {
				t.Fatal("validation failure must reject before reaching storage")
			}
		})
	}
}

func TestCreateRejectsClosedSetViolations(t *testing.T) {
	mutations := map[string]func(*CreateEmployeeInput){
		"designation": func(in *CreateEmployeeInput) { in.Designation = "Intern" },
		"gender":      func(in *CreateEmployeeInput) { in.Gender = "X" },
		"course":      func(in *CreateEmployeeInput) { in.Course = []string{"PHD"} },
		"empty name":  func(in *CreateEmployeeInput) { in.Name = "   " },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			store := newFakeEmployeeStore()
			svc := NewEmployeeService(store, &fakeUploader{id: "img"}, nil)

			in := validInput()
			in.ImageID = "img-1"
			mutate(&in)
			if _, err := svc.Create(context.Background(), in, nil); !errors.Is(err, models.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestCreateRejectsEmptyCourse(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeStore(), &fakeUploader{id: "img"}, nil)
	in := validInput()
	in.Course = nil
	in.ImageID = "img-1"
	if _, err := svc.Create(context.Background(), in, nil); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCreateRequiresImage(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeStore(), &fakeUploader{id: "img"}, nil)
	if _, err := svc.Create(context.Background(), validInput(), nil); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCreateUploadFailureAborts(t *testing.T) {
	store := newFakeEmployeeStore()
	blobs := &fakeUploader{err: fmt.Errorf("%w: provider status 502", models.ErrUploadFailed)}
	svc := NewEmployeeService(store, blobs, nil)

	img := &ImageUpload{Filename: "a.png", Content: strings.NewReader("x"), Size: 1}
	_, err := svc.Create(context.Background(), validInput(), img)
	if !errors.Is(err, models.ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
	if store.inserts != 0 {
		t.Fatal("no partial employee may be created after a failed upload")
	}
}

func mustCreate(t *testing.T, svc *EmployeeService) models.Employee {
	t.Helper()
	in := validInput()
	in.ImageID = "img-1"
	e, err := svc.Create(context.Background(), in, nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	return e
}

func TestUpdatePartialKeepsOtherFields(t *testing.T) {
	store := newFakeEmployeeStore()
	svc := NewEmployeeService(store, &fakeUploader{id: "img"}, nil)
	created := mustCreate(t, svc)

	name := "Asha K"
	updated, err := svc.Update(context.Background(), created.ID, UpdateEmployeeInput{Name: &name}, nil)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.Name != "Asha K" {
		t.Errorf("expected updated name, got %q", updated.Name)
	}
	if updated.Email != created.Email || updated.Mobile != created.Mobile ||
		updated.Designation != created.Designation || updated.Gender != created.Gender ||
		updated.ImageID != created.ImageID || updated.Status != created.Status {
		t.Errorf("untouched fields changed: before=%+v after=%+v", created, updated)
	}
	if len(updated.Course) != 1 || updated.Course[0] != "MCA" {
		t.Errorf("course changed: %v", updated.Course)
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeStore(), &fakeUploader{}, nil)
	name := "x"
	_, err := svc.Update(context.Background(), "missing", UpdateEmployeeInput{Name: &name}, nil)
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateRejectsInvalidEmail(t *testing.T) {
	store := newFakeEmployeeStore()
	svc := NewEmployeeService(store, &fakeUploader{}, nil)
	created := mustCreate(t, svc)

	bad := "not-an-email"
	_, err := svc.Update(context.Background(), created.ID, UpdateEmployeeInput{Email: &bad}, nil)
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	got, _ := svc.Get(context.Background(), created.ID)
	if got.Email != created.Email {
		t.Errorf("email mutated despite rejected patch: %q", got.Email)
	}
}

func TestUpdateWithNewImage(t *testing.T) {
	store := newFakeEmployeeStore()
	blobs := &fakeUploader{id: "img-2"}
	svc := NewEmployeeService(store, blobs, nil)
	created := mustCreate(t, svc)

	img := &ImageUpload{Filename: "new.png", Content: strings.NewReader("x"), Size: 1}
	updated, err := svc.Update(context.Background(), created.ID, UpdateEmployeeInput{}, img)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.ImageID != "img-2" {
		t.Errorf("expected replaced image id, got %q", updated.ImageID)
	}
}

func TestSetStatusBothDirections(t *testing.T) {
	store := newFakeEmployeeStore()
	svc := NewEmployeeService(store, &fakeUploader{}, nil)
	created := mustCreate(t, svc)
	ctx := context.Background()

	if err := svc.SetStatus(ctx, created.ID, models.StatusDeactive); err != nil {
		t.Fatalf("Active -> Deactive failed: %v", err)
	}
	if err := svc.SetStatus(ctx, created.ID, models.StatusActive); err != nil {
		t.Fatalf("Deactive -> Active failed: %v", err)
	}
	// same-value set is a no-op success, not an error
	if err := svc.SetStatus(ctx, created.ID, models.StatusActive); err != nil {
		t.Fatalf("Active -> Active failed: %v", err)
	}
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeStore(), &fakeUploader{}, nil)
	if err := svc.SetStatus(context.Background(), "any", models.Status("Suspended")); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSetStatusNotFound(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeStore(), &fakeUploader{}, nil)
	if err := svc.SetStatus(context.Background(), "missing", models.StatusDeactive); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteThenGet(t *testing.T) {
	store := newFakeEmployeeStore()
	svc := NewEmployeeService(store, &fakeUploader{}, nil)
	created := mustCreate(t, svc)
	ctx := context.Background()

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestListEmptyIsNotAnError(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeStore(), &fakeUploader{}, nil)
	employees, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(employees) != 0 {
		t.Fatalf("expected empty list, got %d", len(employees))
	}
}
