package client

import (
	"context"
	"log"
	"sync"

	"classtrack/internal/forms"
	"classtrack/internal/model"
)

// Session mirrors the browser client's state: local copies of the three
// collections plus the pending form drafts. Writes are optimistic — on
// success the server-echoed record (never the local draft) is appended to
// local state and the draft is reset; on failure the draft is left alone so
// the input can be resubmitted.
//
// A Session is not safe for concurrent use beyond LoadAll's own fan-out.
type Session struct {
	api *Client

	Students   []model.Student
	Courses    []model.Course
	Attendance []model.AttendanceRecord

	StudentDraft    forms.StudentDraft
	CourseDraft     forms.CourseDraft
	AttendanceDraft forms.AttendanceDraft
}

// NewSession creates a session with empty collections and default drafts.
func NewSession(api *Client) *Session {
	return &Session{
		api:             api,
		StudentDraft:    forms.NewStudentDraft(),
		CourseDraft:     forms.NewCourseDraft(),
		AttendanceDraft: forms.NewAttendanceDraft(),
	}
}

// LoadAll fetches the three collections in parallel. Each fetch fails
// independently: a failure is logged and leaves that local collection
// unchanged, so one slow or broken endpoint does not blank out the others.
func (s *Session) LoadAll(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		students, err := s.api.Students(ctx)
		if err != nil {
			log.Printf("load students: %v", err)
			return
		}
		s.Students = students
	}()
	go func() {
		defer wg.Done()
		courses, err := s.api.Courses(ctx)
		if err != nil {
			log.Printf("load courses: %v", err)
			return
		}
		s.Courses = courses
	}()
	go func() {
		defer wg.Done()
		records, err := s.api.Attendance(ctx)
		if err != nil {
			log.Printf("load attendance: %v", err)
			return
		}
		s.Attendance = records
	}()

	wg.Wait()
}

// SubmitStudent posts the student draft.
func (s *Session) SubmitStudent(ctx context.Context) (model.Student, error) {
	st, err := s.api.AddStudent(ctx, s.StudentDraft)
	if err != nil {
		return model.Student{}, err
	}
	s.Students = append(s.Students, st)
	s.StudentDraft = forms.NewStudentDraft()
	return st, nil
}

// SubmitCourse posts the course draft.
func (s *Session) SubmitCourse(ctx context.Context) (model.Course, error) {
	course, err := s.api.AddCourse(ctx, s.CourseDraft)
	if err != nil {
		return model.Course{}, err
	}
	s.Courses = append(s.Courses, course)
	s.CourseDraft = forms.NewCourseDraft()
	return course, nil
}

// SubmitAttendance posts the attendance draft.
func (s *Session) SubmitAttendance(ctx context.Context) (model.AttendanceRecord, error) {
	rec, err := s.api.AddAttendance(ctx, s.AttendanceDraft)
	if err != nil {
		return model.AttendanceRecord{}, err
	}
	s.Attendance = append(s.Attendance, rec)
	s.AttendanceDraft = forms.NewAttendanceDraft()
	return rec, nil
}
