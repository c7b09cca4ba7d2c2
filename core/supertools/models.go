// Package supertools drives the support staff workflow: find a user, inspect their
// enrollments and pods, and fix them through the admin backend.
package supertools

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Progress actions understood by the backend.
const (
	ActionCompleteCourse   = "complete_course"
	ActionResetCourse      = "reset_course"
	ActionCompleteToModule = "complete_to_module"
	ActionRemoveFromPod    = "remove_from_pod"
)

var (
	ErrNoUserSelected = errors.New("no user selected")
	ErrUserNotFound   = errors.New("user not found")
)

type (
	Course struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Slug  string `json:"slug,omitempty"`
	}

	Enrollment struct {
		ID               string     `json:"id"`
		Course           Course     `json:"course"`
		Progress         float64    `json:"progress"`
		CompletedLessons int        `json:"completedLessons"`
		TotalLessons     int        `json:"totalLessons"`
		Status           string     `json:"status"`
		EnrolledAt       *time.Time `json:"enrolledAt,omitempty"`
	}

	Pod struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	PodMembership struct {
		ID       string     `json:"id"`
		Pod      Pod        `json:"pod"`
		Role     string     `json:"role"`
		JoinedAt *time.Time `json:"joinedAt,omitempty"`
	}

	User struct {
		ID             string          `json:"id"`
		Email          string          `json:"email"`
		Name           string          `json:"name"`
		Avatar         string          `json:"avatar,omitempty"`
		Role           string          `json:"role"`
		Enrollments    []Enrollment    `json:"enrollments"`
		PodMemberships []PodMembership `json:"podMemberships"`
	}

	Module struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Order       int    `json:"order"`
		LessonCount int    `json:"lessonCount"`
	}

	EnrollRequest struct {
		UserID   string `json:"userId"`
		CourseID string `json:"courseId"`
	}

	ProgressRequest struct {
		Action   string `json:"action"`
		UserID   string `json:"userId"`
		CourseID string `json:"courseId"`
		ModuleID string `json:"moduleId,omitempty"`
	}

	PodRequest struct {
		Action       string `json:"action"`
		UserID       string `json:"userId"`
		MembershipID string `json:"membershipId"`
	}

	// Backend is the admin API the panel talks to.
	Backend interface {
		SearchUsers(ctx context.Context, query string) ([]User, error)
		GetUser(ctx context.Context, id string) (User, error)
		Modules(ctx context.Context, courseID string) ([]Module, error)
		Enroll(ctx context.Context, req EnrollRequest) error
		Progress(ctx context.Context, req ProgressRequest) error
		Pod(ctx context.Context, req PodRequest) error
	}
)

// Enrollment returns the user's enrollment in courseID.
func (u User) Enrollment(courseID string) (Enrollment, bool) {
	for _, e := range u.Enrollments {
		if e.Course.ID == courseID {
			return e, true
		}
	}
	return Enrollment{}, false
}

func (u User) Membership(id string) (PodMembership, bool) {
	for _, m := range u.PodMemberships {
		if m.ID == id {
			return m, true
		}
	}
	return PodMembership{}, false
}

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status  int
	Message string // the body's `error` field, if any
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend responded with status %d", e.Status)
}
