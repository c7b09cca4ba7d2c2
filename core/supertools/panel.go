package supertools

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/accredipro/institute/core"
)

const (
	genericErrorMessage = "Something went wrong. Please try again."
	networkErrorMessage = "Could not reach the server. Please try again."
)

// Panel holds one support session: the selected user and the module lists fetched so far.
// Every action is attempted once. After a successful change the user is fetched again
// instead of being patched locally.
type Panel struct {
	backend Backend
	toaster Toaster
	logger  core.Logger

	mu       sync.Mutex
	selected *User
	modules  map[string][]Module // by course id, kept for the panel's lifetime
}

func NewPanel(backend Backend, toaster Toaster, logger core.Logger) *Panel {
	return &Panel{
		backend: backend,
		toaster: toaster,
		logger:  logger,
		modules: make(map[string][]Module),
	}
}

// ErrorMessage returns the text shown to staff for err.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return genericErrorMessage
	}
	return networkErrorMessage
}

func (p *Panel) Search(ctx context.Context, query string) ([]User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, core.NewValidationError(nil, core.FieldError{Field: "q", Error: "this field is required"})
	}
	id := p.toaster.Loading("Searching users")
	users, err := p.backend.SearchUsers(ctx, query)
	if err != nil {
		p.toaster.Error(id, ErrorMessage(err))
		return nil, err
	}
	p.toaster.Success(id, fmt.Sprintf("%d users found", len(users)))
	return users, nil
}

// Select fetches the user and makes it the target of every following action.
func (p *Panel) Select(ctx context.Context, userID string) (User, error) {
	id := p.toaster.Loading("Loading user")
	u, err := p.backend.GetUser(ctx, userID)
	if err != nil {
		p.toaster.Error(id, ErrorMessage(err))
		return User{}, err
	}
	p.toaster.Success(id, "User loaded")
	p.setSelected(u)
	return u, nil
}

func (p *Panel) Selected() (User, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.selected == nil {
		return User{}, false
	}
	return *p.selected, true
}

func (p *Panel) setSelected(u User) {
	p.mu.Lock()
	p.selected = &u
	p.mu.Unlock()
}

// Modules returns the course's modules, asking the backend only the first time.
func (p *Panel) Modules(ctx context.Context, courseID string) ([]Module, error) {
	p.mu.Lock()
	mods, ok := p.modules[courseID]
	p.mu.Unlock()
	if ok {
		return mods, nil
	}

	id := p.toaster.Loading("Loading modules")
	mods, err := p.backend.Modules(ctx, courseID)
	if err != nil {
		p.toaster.Error(id, ErrorMessage(err))
		return nil, err
	}
	p.toaster.Success(id, "Modules loaded")
	p.mu.Lock()
	p.modules[courseID] = mods
	p.mu.Unlock()
	return mods, nil
}

func (p *Panel) GrantAccess(ctx context.Context, courseID string) error {
	return p.mutate(ctx, "Granting access", "Access granted", func(userID string) error {
		return p.backend.Enroll(ctx, EnrollRequest{UserID: userID, CourseID: courseID})
	})
}

func (p *Panel) CompleteCourse(ctx context.Context, courseID string) error {
	return p.progress(ctx, "Completing course", "Course completed", ProgressRequest{
		Action:   ActionCompleteCourse,
		CourseID: courseID,
	})
}

func (p *Panel) ResetCourse(ctx context.Context, courseID string) error {
	return p.progress(ctx, "Resetting course", "Course progress reset", ProgressRequest{
		Action:   ActionResetCourse,
		CourseID: courseID,
	})
}

// CompleteToModule marks every lesson up to and including moduleID complete.
func (p *Panel) CompleteToModule(ctx context.Context, courseID, moduleID string) error {
	if moduleID == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "moduleId", Error: "this field is required"})
	}
	return p.progress(ctx, "Completing modules", "Progress updated", ProgressRequest{
		Action:   ActionCompleteToModule,
		CourseID: courseID,
		ModuleID: moduleID,
	})
}

func (p *Panel) RemoveFromPod(ctx context.Context, membershipID string) error {
	return p.mutate(ctx, "Removing from pod", "Removed from pod", func(userID string) error {
		return p.backend.Pod(ctx, PodRequest{Action: ActionRemoveFromPod, UserID: userID, MembershipID: membershipID})
	})
}

func (p *Panel) progress(ctx context.Context, loading, success string, req ProgressRequest) error {
	return p.mutate(ctx, loading, success, func(userID string) error {
		req.UserID = userID
		return p.backend.Progress(ctx, req)
	})
}

func (p *Panel) mutate(ctx context.Context, loading, success string, call func(userID string) error) error {
	u, ok := p.Selected()
	if !ok {
		return ErrNoUserSelected
	}

	id := p.toaster.Loading(loading)
	if err := call(u.ID); err != nil {
		p.toaster.Error(id, ErrorMessage(err))
		p.logger.Warn(fmt.Sprintf("supertools: %s for user %s: %v", strings.ToLower(loading), u.ID, err))
		return err
	}
	p.toaster.Success(id, success)

	fresh, err := p.backend.GetUser(ctx, u.ID)
	if err != nil {
		p.logger.Warn(fmt.Sprintf("supertools: refreshing user %s: %v", u.ID, err))
		return errors.Wrap(err, "refreshing user")
	}
	p.setSelected(fresh)
	return nil
}
