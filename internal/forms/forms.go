// Package forms holds the pending-input state for the three submission
// forms. Drafts are value types: every setter returns a modified copy, so a
// draft captured before an edit is never mutated underneath its holder.
package forms

// StudentDraft is the not-yet-submitted student form.
type StudentDraft struct {
	StudentID  string `json:"studentId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// NewStudentDraft returns an empty student draft.
func NewStudentDraft() StudentDraft {
	return StudentDraft{}
}

func (d StudentDraft) WithStudentID(v string) StudentDraft  { d.StudentID = v; return d }
func (d StudentDraft) WithName(v string) StudentDraft       { d.Name = v; return d }
func (d StudentDraft) WithEmail(v string) StudentDraft      { d.Email = v; return d }
func (d StudentDraft) WithDepartment(v string) StudentDraft { d.Department = v; return d }

// Complete reports whether every required field is filled in. This is the
// client-side gate; the server check stays authoritative.
func (d StudentDraft) Complete() bool {
	return d.StudentID != "" && d.Name != "" && d.Email != "" && d.Department != ""
}

// CourseDraft is the not-yet-submitted course form. MaxStudents stays a
// string here, exactly as it comes out of a text input; the server coerces
// it.
type CourseDraft struct {
	CourseCode  string `json:"courseCode"`
	CourseName  string `json:"courseName"`
	Description string `json:"description"`
	MaxStudents string `json:"maxStudents"`
}

// NewCourseDraft returns an empty course draft.
func NewCourseDraft() CourseDraft {
	return CourseDraft{}
}

func (d CourseDraft) WithCourseCode(v string) CourseDraft  { d.CourseCode = v; return d }
func (d CourseDraft) WithCourseName(v string) CourseDraft  { d.CourseName = v; return d }
func (d CourseDraft) WithDescription(v string) CourseDraft { d.Description = v; return d }
func (d CourseDraft) WithMaxStudents(v string) CourseDraft { d.MaxStudents = v; return d }

func (d CourseDraft) Complete() bool {
	return d.CourseCode != "" && d.CourseName != "" && d.Description != "" && d.MaxStudents != ""
}

// AttendanceDraft is the not-yet-submitted attendance form.
type AttendanceDraft struct {
	StudentID  string `json:"studentId"`
	CourseCode string `json:"courseCode"`
	IsPresent  bool   `json:"isPresent"`
}

// NewAttendanceDraft returns a draft with IsPresent defaulting to true,
// matching the form's preselected state.
func NewAttendanceDraft() AttendanceDraft {
	return AttendanceDraft{IsPresent: true}
}

func (d AttendanceDraft) WithStudentID(v string) AttendanceDraft  { d.StudentID = v; return d }
func (d AttendanceDraft) WithCourseCode(v string) AttendanceDraft { d.CourseCode = v; return d }
func (d AttendanceDraft) WithIsPresent(v bool) AttendanceDraft    { d.IsPresent = v; return d }

func (d AttendanceDraft) Complete() bool {
	return d.StudentID != "" && d.CourseCode != ""
}
