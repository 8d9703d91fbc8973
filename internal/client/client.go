// Package client is the Go counterpart of the browser client: a typed HTTP
// client for the register API plus a Session holding local copies of the
// collections and the pending form drafts.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"classtrack/internal/forms"
	"classtrack/internal/model"
)

// Client calls the register API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New creates a client with the given request timeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// HealthStatus is the /health payload.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Health checks the server.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	var out HealthStatus
	err := c.getJSON(ctx, "/health", &out)
	return out, err
}

// Students fetches the full student collection.
func (c *Client) Students(ctx context.Context) ([]model.Student, error) {
	var out []model.Student
	err := c.getJSON(ctx, "/api/students", &out)
	return out, err
}

// Courses fetches the full course collection.
func (c *Client) Courses(ctx context.Context) ([]model.Course, error) {
	var out []model.Course
	err := c.getJSON(ctx, "/api/courses", &out)
	return out, err
}

// Attendance fetches the full attendance collection.
func (c *Client) Attendance(ctx context.Context) ([]model.AttendanceRecord, error) {
	var out []model.AttendanceRecord
	err := c.getJSON(ctx, "/api/attendance", &out)
	return out, err
}

// AttendanceForStudent fetches the records matching an external student
// code.
func (c *Client) AttendanceForStudent(ctx context.Context, studentID string) ([]model.AttendanceRecord, error) {
	var out []model.AttendanceRecord
	err := c.getJSON(ctx, "/api/attendance/student/"+studentID, &out)
	return out, err
}

// AddStudent submits a student draft and returns the stored record.
func (c *Client) AddStudent(ctx context.Context, d forms.StudentDraft) (model.Student, error) {
	var out model.Student
	err := c.postJSON(ctx, "/api/students", d, &out)
	return out, err
}

// AddCourse submits a course draft and returns the stored record.
func (c *Client) AddCourse(ctx context.Context, d forms.CourseDraft) (model.Course, error) {
	var out model.Course
	err := c.postJSON(ctx, "/api/courses", d, &out)
	return out, err
}

// AddAttendance submits an attendance draft and returns the stored record.
func (c *Client) AddAttendance(ctx context.Context, d forms.AttendanceDraft) (model.AttendanceRecord, error) {
	var out model.AttendanceRecord
	err := c.postJSON(ctx, "/api/attendance", d, &out)
	return out, err
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("server error %s: %s", resp.Status, apiErr.Error)
		}
		return fmt.Errorf("server error %s: %s", resp.Status, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
