package main

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/accredipro/institute/apps/api/echo"
	"github.com/accredipro/institute/core"
	"github.com/accredipro/institute/core/supertools"
)

type fakeBackend struct {
	users   map[string]supertools.User
	modules map[string][]supertools.Module
	calls   []string
}

func newFakeBackend() *fakeBackend {
	gut := supertools.Course{ID: "c1", Title: "Gut Health Mini Diploma"}
	return &fakeBackend{
		users: map[string]supertools.User{
			"u1": {
				ID:    "u1",
				Email: "ana@example.com",
				Name:  "Ana Lima",
				Role:  "student",
				Enrollments: []supertools.Enrollment{
					{ID: "e1", Course: gut, Progress: 25, CompletedLessons: 1, TotalLessons: 4, Status: "active"},
				},
				PodMemberships: []supertools.PodMembership{
					{ID: "m1", Pod: supertools.Pod{ID: "p1", Name: "Spring cohort"}, Role: "member"},
				},
			},
		},
		modules: map[string][]supertools.Module{
			"c1": {
				{ID: "mod-1", Title: "Foundations", Order: 1, LessonCount: 2},
				{ID: "mod-2", Title: "Protocols", Order: 2, LessonCount: 2},
			},
		},
	}
}

func (b *fakeBackend) SearchUsers(_ context.Context, query string) ([]supertools.User, error) {
	b.calls = append(b.calls, "search?q="+query)
	var out []supertools.User
	for _, u := range b.users {
		if strings.Contains(u.Email, query) || strings.Contains(strings.ToLower(u.Name), query) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (b *fakeBackend) GetUser(_ context.Context, id string) (supertools.User, error) {
	b.calls = append(b.calls, "search?userId="+id)
	if u, ok := b.users[id]; ok {
		return u, nil
	}
	return supertools.User{}, supertools.ErrUserNotFound
}

func (b *fakeBackend) Modules(_ context.Context, courseID string) ([]supertools.Module, error) {
	b.calls = append(b.calls, "modules?courseId="+courseID)
	mods, ok := b.modules[courseID]
	if !ok {
		return nil, &supertools.APIError{Status: 404, Message: "Course not found"}
	}
	return mods, nil
}

func (b *fakeBackend) Enroll(_ context.Context, req supertools.EnrollRequest) error {
	b.calls = append(b.calls, "enroll "+req.UserID+" "+req.CourseID)
	u := b.users[req.UserID]
	u.Enrollments = append(u.Enrollments, supertools.Enrollment{
		ID:     "e-" + req.CourseID,
		Course: supertools.Course{ID: req.CourseID, Title: "Hormone Mini Diploma"},
		Status: "active",
	})
	b.users[req.UserID] = u
	return nil
}

func (b *fakeBackend) Progress(_ context.Context, req supertools.ProgressRequest) error {
	b.calls = append(b.calls, strings.TrimSpace(fmt.Sprintf("progress %s %s %s %s", req.Action, req.UserID, req.CourseID, req.ModuleID)))
	return nil
}

func (b *fakeBackend) Pod(_ context.Context, req supertools.PodRequest) error {
	b.calls = append(b.calls, "pod "+req.Action+" "+req.UserID+" "+req.MembershipID)
	u := b.users[req.UserID]
	u.PodMemberships = nil
	b.users[req.UserID] = u
	return nil
}

func testConfig() *core.Config {
	return &core.Config{
		AppName:   "ASI",
		SecretKey: "test-secret",
		Server:    core.ServerConfig{JWTExpirationDelta: time.Hour},
	}
}

func setup(t *testing.T) (*commandLine, *fakeBackend, *bytes.Buffer) {
	t.Helper()
	backend := newFakeBackend()
	var out bytes.Buffer
	return &commandLine{
		conf:    testConfig(),
		logger:  core.NewNopLogger(),
		out:     &out,
		backend: backend,
	}, backend, &out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantOut    []string
	wantCalls  []string
}

func runCLITests(t *testing.T, tests []cliTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, backend, out := setup(t)
			err := cli.run(append([]string{"admin"}, tt.args...))
			switch {
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, err)
			case tt.wantErrStr != "":
				if assert.Error(t, err) {
					assert.Equal(t, tt.wantErrStr, err.Error())
				}
			default:
				assert.NoError(t, err)
			}
			for _, want := range tt.wantOut {
				assert.Contains(t, out.String(), want)
			}
			if tt.wantCalls != nil {
				assert.Equal(t, tt.wantCalls, backend.calls)
			}
		})
	}
}

func Test_commandLine_usage(t *testing.T) {
	runCLITests(t, []cliTest{
		{name: "no command", wantErr: errHelp, wantOut: []string{"Usage:"}},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp, wantOut: []string{"registry-check"}},
		{name: "search without query", args: []string{"search"}, wantErr: errHelp, wantCalls: []string(nil)},
		{name: "search blank query", args: []string{"search", "-q", "  "}, wantErr: errHelp},
		{name: "show without user", args: []string{"show"}, wantErr: errHelp},
		{name: "grant without course", args: []string{"grant", "-user", "u1"}, wantErr: errHelp},
		{name: "remove-pod without membership", args: []string{"remove-pod", "-user", "u1"}, wantErr: errHelp},
		{name: "token without subject", args: []string{"token", "-admin"}, wantErr: errHelp},
		{name: "help flag", args: []string{"modules", "-h"}, wantErr: errHelp},
		{name: "unknown flag", args: []string{"show", "-id", "u1"}, wantErrStr: "flag provided but not defined: -id"},
	})
}

func Test_commandLine_superTools(t *testing.T) {
	runCLITests(t, []cliTest{
		{
			name:      "search",
			args:      []string{"search", "-q", "ana"},
			wantOut:   []string{"u1\tana@example.com\tAna Lima\t1 enrollments"},
			wantCalls: []string{"search?q=ana"},
		},
		{
			name:    "search without results",
			args:    []string{"search", "-q", "nobody"},
			wantOut: []string{"no users found"},
		},
		{
			name:      "show",
			args:      []string{"show", "-user", "u1"},
			wantOut:   []string{"Ana Lima <ana@example.com> [u1] student", "c1\tGut Health Mini Diploma\t25% (1/4 lessons)\tactive", "m1\tSpring cohort (member)"},
			wantCalls: []string{"search?userId=u1"},
		},
		{
			name:    "show unknown user",
			args:    []string{"show", "-user", "u9"},
			wantErr: supertools.ErrUserNotFound,
			wantOut: []string{"ERR Could not reach the server. Please try again."},
		},
		{
			name:      "modules",
			args:      []string{"modules", "-course", "c1"},
			wantOut:   []string{" 1. Foundations (2 lessons) [mod-1]", " 2. Protocols (2 lessons) [mod-2]"},
			wantCalls: []string{"modules?courseId=c1"},
		},
		{
			name:       "modules of unknown course",
			args:       []string{"modules", "-course", "c9"},
			wantErrStr: "Course not found",
			wantOut:    []string{"ERR Course not found"},
		},
		{
			name:      "grant",
			args:      []string{"grant", "-user", "u1", "-course", "c2"},
			wantOut:   []string{"ok  Access granted", "c2\tHormone Mini Diploma"},
			wantCalls: []string{"search?userId=u1", "enroll u1 c2", "search?userId=u1"},
		},
		{
			name:      "complete",
			args:      []string{"complete", "-user", "u1", "-course", "c1"},
			wantOut:   []string{"ok  Course completed"},
			wantCalls: []string{"search?userId=u1", "progress complete_course u1 c1", "search?userId=u1"},
		},
		{
			name:      "reset",
			args:      []string{"reset", "-user", "u1", "-course", "c1"},
			wantOut:   []string{"ok  Course progress reset"},
			wantCalls: []string{"search?userId=u1", "progress reset_course u1 c1", "search?userId=u1"},
		},
		{
			name:      "complete-to-module lists modules",
			args:      []string{"complete-to-module", "-user", "u1", "-course", "c1"},
			wantErr:   errHelp,
			wantOut:   []string{" 2. Protocols (2 lessons) [mod-2]"},
			wantCalls: []string{"modules?courseId=c1"},
		},
		{
			name:      "complete-to-module",
			args:      []string{"complete-to-module", "-user", "u1", "-course", "c1", "-module", "mod-2"},
			wantOut:   []string{"ok  Progress updated"},
			wantCalls: []string{"search?userId=u1", "progress complete_to_module u1 c1 mod-2", "search?userId=u1"},
		},
		{
			name:       "remove-pod unknown membership",
			args:       []string{"remove-pod", "-user", "u1", "-membership", "m9"},
			wantErrStr: "user u1 has no pod membership m9",
			wantCalls:  []string{"search?userId=u1"},
		},
		{
			name:      "remove-pod",
			args:      []string{"remove-pod", "-user", "u1", "-membership", "m1"},
			wantOut:   []string{"ok  Removed from pod", "Pods:\n  none"},
			wantCalls: []string{"search?userId=u1", "pod remove_from_pod u1 m1", "search?userId=u1"},
		},
	})
}

func Test_commandLine_apiTokenPrompt(t *testing.T) {
	defer func(f func(int) ([]byte, error)) { readPasswordFunc = f }(readPasswordFunc)

	var out bytes.Buffer
	cli := &commandLine{conf: testConfig(), logger: core.NewNopLogger(), out: &out}
	readPasswordFunc = func(int) ([]byte, error) { return []byte(" \n"), nil }

	err := cli.run([]string{"admin", "search", "-q", "ana"})
	require.Error(t, err)
	assert.Equal(t, "an API token is required", err.Error())
	assert.Contains(t, out.String(), "Enter API token:")
}

func Test_commandLine_registryCheck(t *testing.T) {
	runCLITests(t, []cliTest{
		{
			name:    "registry-check",
			args:    []string{"registry-check"},
			wantOut: []string{"gut-health\t", "registry OK"},
		},
	})
}

func Test_commandLine_token(t *testing.T) {
	cli, _, out := setup(t)
	require.NoError(t, cli.run([]string{"admin", "token", "-subject", "staff-1", "-admin", "-email", "staff@example.com"}))

	token := strings.TrimSpace(out.String())
	parsed, err := jwt.ParseWithClaims(token, new(echoapi.Claims), func(*jwt.Token) (interface{}, error) {
		return []byte(cli.conf.SecretKey), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(*echoapi.Claims)
	assert.Equal(t, "staff-1", claims.Subject)
	assert.Equal(t, "staff@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func Test_commandLine_migrate(t *testing.T) {
	defer func(f func(*core.Config) (*sqlx.DB, error)) { openDBFunc = f }(openDBFunc)
	defer func(f func(*sqlx.DB, string, ...string) error) { runMigrationsFunc = f }(runMigrationsFunc)

	openDBFunc = func(*core.Config) (*sqlx.DB, error) { return nil, nil }
	runMigrationsFunc = func(_ *sqlx.DB, command string, args ...string) error {
		switch command {
		case "up", "up-by-one", "down", "fix", "redo", "reset", "status", "version": // pass
		case "up-to":
			if len(args) == 0 {
				return fmt.Errorf("up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		case "create":
			if len(args) == 0 {
				return fmt.Errorf("create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]")
			}
		case "down-to":
			if len(args) == 0 {
				return fmt.Errorf("down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		default:
			return fmt.Errorf("%q: no such command", command)
		}
		return nil
	}

	runCLITests(t, []cliTest{
		{name: "no subcommand", args: []string{"migrate"}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"migrate", "lol"}, wantErrStr: "\"lol\": no such command"},
		{name: "up-to: no args", args: []string{"migrate", "up-to"}, wantErrStr: "up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION"},
		{name: "up-to: non-int arg", args: []string{"migrate", "up-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "create: no args", args: []string{"migrate", "create"}, wantErrStr: "create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]"},
		{name: "down-to: no args", args: []string{"migrate", "down-to"}, wantErrStr: "down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION"},
		{name: "down-to: non-int arg", args: []string{"migrate", "down-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "up", args: []string{"migrate", "up"}},
		{name: "up-by-one", args: []string{"migrate", "up-by-one"}},
		{name: "up-to", args: []string{"migrate", "up-to", "2"}},
		{name: "down", args: []string{"migrate", "down"}},
		{name: "down-to", args: []string{"migrate", "down-to", "1"}},
		{name: "redo", args: []string{"migrate", "redo"}},
		{name: "reset", args: []string{"migrate", "reset"}},
		{name: "status", args: []string{"migrate", "status"}},
		{name: "version", args: []string{"migrate", "version"}},
		{name: "create", args: []string{"migrate", "create", "course", "sql"}},
		{name: "fix", args: []string{"migrate", "fix"}},
	})
}
