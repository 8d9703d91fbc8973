package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"classtrack/internal/model"
)

// Store holds the three collections for the life of the process. Records are
// only ever appended; listings always come back in insertion order. The
// mutex keeps an append atomic with respect to concurrent requests.
type Store struct {
	mu         sync.Mutex
	students   []model.Student
	courses    []model.Course
	attendance []model.AttendanceRecord
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// -------- Students --------

// AddStudent stamps the record with a generated ID, enrollment date, and the
// active flag, then appends it.
func (s *Store) AddStudent(st model.Student) model.Student {
	st.ID = uuid.NewString()
	st.EnrollmentDate = time.Now().UTC()
	st.IsActive = true

	s.mu.Lock()
	defer s.mu.Unlock()
	s.students = append(s.students, st)
	return st
}

// ListStudents returns all students in insertion order.
func (s *Store) ListStudents() []model.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Student, len(s.students))
	copy(out, s.students)
	return out
}

// -------- Courses --------

// AddCourse stamps and appends a course. EnrolledStudents starts empty and
// stays that way; nothing writes to it yet.
func (s *Store) AddCourse(c model.Course) model.Course {
	c.ID = uuid.NewString()
	c.EnrolledStudents = []string{}
	c.IsActive = true
	c.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = append(s.courses, c)
	return c
}

// ListCourses returns all courses in insertion order.
func (s *Store) ListCourses() []model.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// -------- Attendance --------

// AddAttendance stamps and appends an attendance record.
func (s *Store) AddAttendance(r model.AttendanceRecord) model.AttendanceRecord {
	r.ID = uuid.NewString()
	r.Timestamp = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.attendance = append(s.attendance, r)
	return r
}

// ListAttendance returns all attendance records in insertion order.
func (s *Store) ListAttendance() []model.AttendanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.AttendanceRecord, len(s.attendance))
	copy(out, s.attendance)
	return out
}

// ListAttendanceByStudent returns the records whose StudentID matches
// exactly, preserving insertion order. The id is matched against the
// external student code, not the generated record ID.
func (s *Store) ListAttendanceByStudent(studentID string) []model.AttendanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.AttendanceRecord{}
	for _, r := range s.attendance {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out
}
