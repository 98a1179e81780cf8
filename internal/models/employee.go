package models

import (
	"regexp"
	"time"
)

// Status is the employee lifecycle flag, independent of record existence.
type Status string

const (
	StatusActive   Status = "Active"
	StatusDeactive Status = "Deactive"
)

// IsValidStatus checks if the status is one of the two allowed values.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusActive, StatusDeactive:
		return true
	default:
		return false
	}
}

// Designation constants (closed set)
const (
	DesignationHR      = "HR"
	DesignationManager = "Manager"
	DesignationSales   = "Sales"
)

func IsValidDesignation(d string) bool {
	switch d {
	case DesignationHR, DesignationManager, DesignationSales:
		return true
	default:
		return false
	}
}

// Gender constants (closed set)
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

func IsValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale
}

// Course constants (closed set)
const (
	CourseMCA = "MCA"
	CourseBCA = "BCA"
	CourseBSC = "BSC"
)

func IsValidCourse(c string) bool {
	switch c {
	case CourseMCA, CourseBCA, CourseBSC:
		return true
	default:
		return false
	}
}

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobilePattern = regexp.MustCompile(`^[0-9]{10,}$`)
)

// IsValidEmail checks the email against a standard address shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidMobile requires a digit-only number of at least 10 digits.
func IsValidMobile(mobile string) bool {
	return mobilePattern.MatchString(mobile)
}

// Employee is one record per hired individual. Course is stored as an
// ordered list of enumerated values (text[] in Postgres).
type Employee struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Mobile      string    `json:"mobile"`
	Designation string    `json:"designation"`
	Gender      string    `json:"gender"`
	Course      []string  `json:"course"`
	ImageID     string    `json:"imageId"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
