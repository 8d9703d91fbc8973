package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classtrack/internal/model"
	"classtrack/internal/store"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(store.New())

	r := gin.New()
	r.GET("/health", h.Health)
	api := r.Group("/api")
	{
		api.GET("/students", h.ListStudents)
		api.POST("/students", h.CreateStudent)
		api.GET("/courses", h.ListCourses)
		api.POST("/courses", h.CreateCourse)
		api.GET("/attendance", h.ListAttendance)
		api.POST("/attendance", h.CreateAttendance)
		api.GET("/attendance/student/:studentId", h.ListAttendanceByStudent)
	}
	return r
}

func perform(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func validStudent() map[string]any {
	return map[string]any{
		"studentId":  "S1",
		"name":       "Ann",
		"email":      "a@x.com",
		"department": "CS",
	}
}

// ---------- Students ----------

func TestCreateStudent(t *testing.T) {
	r := newTestRouter()

	w := perform(t, r, http.MethodPost, "/api/students", validStudent())
	require.Equal(t, http.StatusCreated, w.Code)

	st := decode[model.Student](t, w)
	assert.NotEmpty(t, st.ID)
	assert.False(t, st.EnrollmentDate.IsZero())
	assert.True(t, st.IsActive)
	assert.Equal(t, "S1", st.StudentID)
	assert.Equal(t, "Ann", st.Name)
	assert.Equal(t, "a@x.com", st.Email)
	assert.Equal(t, "CS", st.Department)

	list := decode[[]model.Student](t, perform(t, r, http.MethodGet, "/api/students", nil))
	require.Len(t, list, 1)
	assert.Equal(t, st, list[0])
}

func TestCreateStudentMissingFieldRejected(t *testing.T) {
	r := newTestRouter()

	for _, field := range []string{"studentId", "name", "email", "department"} {
		for name, mutate := range map[string]func(map[string]any){
			"absent": func(m map[string]any) { delete(m, field) },
			"empty":  func(m map[string]any) { m[field] = "" },
			"null":   func(m map[string]any) { m[field] = nil },
		} {
			body := validStudent()
			mutate(body)
			w := perform(t, r, http.MethodPost, "/api/students", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s", field, name)
			assert.Contains(t, w.Body.String(), "error")
		}
	}

	// No partial appends from any of the rejected requests.
	list := decode[[]model.Student](t, perform(t, r, http.MethodGet, "/api/students", nil))
	assert.Empty(t, list)
}

func TestCreateStudentLiteralZeroStringPasses(t *testing.T) {
	r := newTestRouter()

	body := validStudent()
	body["studentId"] = "0"
	w := perform(t, r, http.MethodPost, "/api/students", body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateStudentNoEmailFormatCheck(t *testing.T) {
	r := newTestRouter()

	body := validStudent()
	body["email"] = "not-an-email"
	w := perform(t, r, http.MethodPost, "/api/students", body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

// ---------- Courses ----------

func validCourse() map[string]any {
	return map[string]any{
		"courseCode":  "C1",
		"courseName":  "Algo",
		"description": "d",
		"maxStudents": "30",
	}
}

func TestCreateCourseCoercesMaxStudents(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		name  string
		value any
		want  int
	}{
		{"string digits", "30", 30},
		{"json number", float64(25), 25},
		// Non-parseable input is stored as 0, not rejected. Known defect
		// preserved from the wire contract.
		{"non-numeric string", "abc", 0},
	}
	for _, tc := range cases {
		body := validCourse()
		body["maxStudents"] = tc.value
		w := perform(t, r, http.MethodPost, "/api/courses", body)
		require.Equal(t, http.StatusCreated, w.Code, tc.name)
		course := decode[model.Course](t, w)
		assert.Equal(t, tc.want, course.MaxStudents, tc.name)
		assert.True(t, course.IsActive, tc.name)
		assert.NotNil(t, course.EnrolledStudents, tc.name)
	}
}

func TestCreateCourseMissingFieldRejected(t *testing.T) {
	r := newTestRouter()

	for _, field := range []string{"courseCode", "courseName", "description", "maxStudents"} {
		body := validCourse()
		delete(body, field)
		w := perform(t, r, http.MethodPost, "/api/courses", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, field)
	}

	// Empty maxStudents is missing, not zero.
	body := validCourse()
	body["maxStudents"] = ""
	w := perform(t, r, http.MethodPost, "/api/courses", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	list := decode[[]model.Course](t, perform(t, r, http.MethodGet, "/api/courses", nil))
	assert.Empty(t, list)
}

func TestCourseEnrolledStudentsSerializesAsEmptyArray(t *testing.T) {
	r := newTestRouter()

	w := perform(t, r, http.MethodPost, "/api/courses", validCourse())
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"enrolledStudents":[]`)
}

// ---------- Attendance ----------

func TestCreateAttendanceRequiresRealBoolean(t *testing.T) {
	r := newTestRouter()

	base := map[string]any{"studentId": "S1", "courseCode": "C1"}

	for name, value := range map[string]any{
		"string true":  "true",
		"string false": "false",
		"number":       1,
	} {
		body := map[string]any{"studentId": "S1", "courseCode": "C1", "isPresent": value}
		w := perform(t, r, http.MethodPost, "/api/attendance", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}

	// Missing entirely.
	w := perform(t, r, http.MethodPost, "/api/attendance", base)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	list := decode[[]model.AttendanceRecord](t, perform(t, r, http.MethodGet, "/api/attendance", nil))
	assert.Empty(t, list)

	// Real booleans pass, including explicit false.
	for _, present := range []bool{true, false} {
		body := map[string]any{"studentId": "S1", "courseCode": "C1", "isPresent": present}
		w := perform(t, r, http.MethodPost, "/api/attendance", body)
		require.Equal(t, http.StatusCreated, w.Code)
		rec := decode[model.AttendanceRecord](t, w)
		assert.Equal(t, present, rec.IsPresent)
		assert.NotEmpty(t, rec.ID)
		assert.False(t, rec.Timestamp.IsZero())
	}
}

func TestAttendanceUnknownCodesAccepted(t *testing.T) {
	r := newTestRouter()

	// No student or course exists; the record is stored anyway.
	body := map[string]any{"studentId": "ghost", "courseCode": "nowhere", "isPresent": true}
	w := perform(t, r, http.MethodPost, "/api/attendance", body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestListAttendanceByStudent(t *testing.T) {
	r := newTestRouter()

	posts := []map[string]any{
		{"studentId": "S1", "courseCode": "C1", "isPresent": true},
		{"studentId": "S2", "courseCode": "C1", "isPresent": true},
		{"studentId": "S1", "courseCode": "C2", "isPresent": false},
	}
	for _, p := range posts {
		require.Equal(t, http.StatusCreated, perform(t, r, http.MethodPost, "/api/attendance", p).Code)
	}

	w := perform(t, r, http.MethodGet, "/api/attendance/student/S1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	records := decode[[]model.AttendanceRecord](t, w)
	require.Len(t, records, 2)
	assert.Equal(t, "C1", records[0].CourseCode)
	assert.Equal(t, "C2", records[1].CourseCode)

	// Zero matches is still a 200 with an empty array.
	w = perform(t, r, http.MethodGet, "/api/attendance/student/S9", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

// ---------- Health ----------

func TestHealth(t *testing.T) {
	r := newTestRouter()

	w := perform(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "OK", out.Status)
	assert.NotEmpty(t, out.Timestamp)
}

// ---------- End to end ----------

func TestRegisterScenario(t *testing.T) {
	r := newTestRouter()

	w := perform(t, r, http.MethodPost, "/api/students", validStudent())
	require.Equal(t, http.StatusCreated, w.Code)
	st := decode[model.Student](t, w)
	require.NotEmpty(t, st.ID)

	course := map[string]any{
		"courseCode":  "C1",
		"courseName":  "Algo",
		"description": "d",
		"maxStudents": "2",
	}
	w = perform(t, r, http.MethodPost, "/api/courses", course)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 2, decode[model.Course](t, w).MaxStudents)

	att := map[string]any{"studentId": "S1", "courseCode": "C1", "isPresent": true}
	w = perform(t, r, http.MethodPost, "/api/attendance", att)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[model.AttendanceRecord](t, w)

	w = perform(t, r, http.MethodGet, "/api/attendance/student/S1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	records := decode[[]model.AttendanceRecord](t, w)
	require.Len(t, records, 1)
	assert.Equal(t, created, records[0])
}
