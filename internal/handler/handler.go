package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"classtrack/internal/model"
	"classtrack/internal/store"
)

// Handler serves the register API. Every endpoint is single-shot: validate,
// append, echo the stored record back.
type Handler struct {
	store *store.Store
}

// New creates a handler on top of a store.
func New(s *store.Store) *Handler {
	return &Handler{store: s}
}

// ---------- Health ----------

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC(),
	})
}

// ---------- Students ----------

type studentRequest struct {
	StudentID  string `json:"studentId" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Department string `json:"department" binding:"required"`
}

func (h *Handler) ListStudents(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListStudents())
}

// CreateStudent validates the four required fields and appends a new
// student. Email gets no format check; any non-empty string passes.
func (h *Handler) CreateStudent(c *gin.Context) {
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	st := h.store.AddStudent(model.Student{
		StudentID:  req.StudentID,
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	})
	c.JSON(http.StatusCreated, st)
}

// ---------- Courses ----------

// maxStudents is bound as `any` because the form client sends it as a
// string while API callers tend to send a number. Both are accepted and
// coerced after the presence check.
type courseRequest struct {
	CourseCode  string `json:"courseCode" binding:"required"`
	CourseName  string `json:"courseName" binding:"required"`
	Description string `json:"description" binding:"required"`
	MaxStudents any    `json:"maxStudents" binding:"required"`
}

func (h *Handler) ListCourses(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListCourses())
}

// CreateCourse checks maxStudents for presence only, then coerces it to an
// integer. A non-parseable value stores 0 rather than failing validation;
// callers get no signal beyond the echoed record.
func (h *Handler) CreateCourse(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MaxStudents == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	course := h.store.AddCourse(model.Course{
		CourseCode:  req.CourseCode,
		CourseName:  req.CourseName,
		Description: req.Description,
		MaxStudents: coerceInt(req.MaxStudents),
	})
	c.JSON(http.StatusCreated, course)
}

// coerceInt truncates JSON numbers and parses string digits; anything else
// comes out as 0.
func coerceInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		parsed, _ := strconv.Atoi(n)
		return parsed
	default:
		return 0
	}
}

// ---------- Attendance ----------

// isPresent binds through a *bool so that a missing field and a non-boolean
// value (including "true" as a string) are both rejected, while an explicit
// false still passes.
type attendanceRequest struct {
	StudentID  string `json:"studentId" binding:"required"`
	CourseCode string `json:"courseCode" binding:"required"`
	IsPresent  *bool  `json:"isPresent" binding:"required"`
}

func (h *Handler) ListAttendance(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListAttendance())
}

// CreateAttendance appends a record. The student and course codes are taken
// as-is; nothing checks that they refer to stored entities.
func (h *Handler) CreateAttendance(c *gin.Context) {
	var req attendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attendance data"})
		return
	}

	rec := h.store.AddAttendance(model.AttendanceRecord{
		StudentID:  req.StudentID,
		CourseCode: req.CourseCode,
		IsPresent:  *req.IsPresent,
	})
	c.JSON(http.StatusCreated, rec)
}

// ListAttendanceByStudent filters by the external student code in the path.
// An unknown code is not an error; it just matches nothing.
func (h *Handler) ListAttendanceByStudent(c *gin.Context) {
	studentID := c.Param("studentId")
	c.JSON(http.StatusOK, h.store.ListAttendanceByStudent(studentID))
}
