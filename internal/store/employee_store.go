package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"employee-admin/internal/models"
)

// EmployeeStore persists employees in PostgreSQL.
type EmployeeStore struct {
	pool Querier
}

func NewEmployeeStore(pool Querier) *EmployeeStore {
	return &EmployeeStore{pool: pool}
}

const employeeColumns = `id, name, email, mobile, designation, gender, course, image_id, status, created_at, updated_at`

// List returns every employee, newest first. An empty set is not an error.
func (s *EmployeeStore) List(ctx context.Context) ([]models.Employee, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+employeeColumns+`
		  FROM employees
		 ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, translatePgError(err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, translatePgError(err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, translatePgError(err)
	}
	return employees, nil
}

// GetByID fetches one employee or models.ErrNotFound.
func (s *EmployeeStore) GetByID(ctx context.Context, id string) (models.Employee, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+employeeColumns+`
		  FROM employees
		 WHERE id = $1
	`, id)

	e, err := scanEmployee(row)
	if err != nil {
		return models.Employee{}, translatePgError(err)
	}
	return e, nil
}

// Insert creates the row; timestamps come back from the database.
func (s *EmployeeStore) Insert(ctx context.Context, e *models.Employee) error {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO employees (id, name, email, mobile, designation, gender, course, image_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`, e.ID, e.Name, e.Email, e.Mobile, e.Designation, e.Gender, e.Course, e.ImageID, string(e.Status))

	if err := row.Scan(&e.CreatedAt, &e.UpdatedAt); err != nil {
		return translatePgError(err)
	}
	return nil
}

// Update overwrites every mutable field; the service decides which
// values carry over from the prior record.
func (s *EmployeeStore) Update(ctx context.Context, e *models.Employee) error {
	row := s.pool.QueryRow(ctx, `
		UPDATE employees
		   SET name = $1,
		       email = $2,
		       mobile = $3,
		       designation = $4,
		       gender = $5,
		       course = $6,
		       image_id = $7,
		       updated_at = NOW()
		 WHERE id = $8
		RETURNING updated_at
	`, e.Name, e.Email, e.Mobile, e.Designation, e.Gender, e.Course, e.ImageID, e.ID)

	if err := row.Scan(&e.UpdatedAt); err != nil {
		return translatePgError(err)
	}
	return nil
}

// SetStatus overwrites the status field only.
func (s *EmployeeStore) SetStatus(ctx context.Context, id string, status models.Status) error {
	ct, err := s.pool.Exec(ctx, `
		UPDATE employees SET status = $1, updated_at = NOW() WHERE id = $2
	`, string(status), id)
	if err != nil {
		return translatePgError(err)
	}
	if ct.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete physically removes the row.
func (s *EmployeeStore) Delete(ctx context.Context, id string) error {
	ct, err := s.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return translatePgError(err)
	}
	if ct.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var (
		e      models.Employee
		status string
		course []string
	)
	if err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Email,
		&e.Mobile,
		&e.Designation,
		&e.Gender,
		&course,
		&e.ImageID,
		&status,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, models.ErrNotFound
		}
		return models.Employee{}, err
	}
	e.Course = course
	e.Status = models.Status(status)
	return e, nil
}
