package model

import "time"

// Student is a registered student. The ID is generated by the store;
// StudentID is the caller-supplied external code and is not required to be
// unique.
type Student struct {
	ID             string    `json:"id"`
	StudentID      string    `json:"studentId"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Department     string    `json:"department"`
	EnrollmentDate time.Time `json:"enrollmentDate"`
	IsActive       bool      `json:"isActive"`
}

// Course is an offered course. EnrolledStudents is kept for wire
// compatibility with the client; no endpoint currently populates it.
type Course struct {
	ID               string    `json:"id"`
	CourseCode       string    `json:"courseCode"`
	CourseName       string    `json:"courseName"`
	Description      string    `json:"description"`
	MaxStudents      int       `json:"maxStudents"`
	EnrolledStudents []string  `json:"enrolledStudents"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
}

// AttendanceRecord is a single attendance log entry. StudentID and
// CourseCode are external codes and are not checked against the student or
// course collections.
type AttendanceRecord struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"studentId"`
	CourseCode string    `json:"courseCode"`
	IsPresent  bool      `json:"isPresent"`
	Timestamp  time.Time `json:"timestamp"`
}
