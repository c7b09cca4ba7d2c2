// Package supertoolssvc talks to the admin backend over HTTP.
package supertoolssvc

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/accredipro/institute/core"
	"github.com/accredipro/institute/core/supertools"
)

const (
	searchPath   = "/api/admin/super-tools/search"
	modulesPath  = "/api/admin/super-tools/modules"
	enrollPath   = "/api/admin/enroll"
	progressPath = "/api/admin/super-tools/progress"
	podPath      = "/api/admin/super-tools/pod"
)

// Client implements supertools.Backend. Requests are never retried.
type Client struct {
	http *resty.Client
}

var _ supertools.Backend = (*Client)(nil)

func NewClient(conf core.SuperToolsConfig) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(conf.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(conf.Timeout)
	if conf.APIToken != "" {
		c.SetAuthToken(conf.APIToken)
	}
	return &Client{http: c}
}

type (
	usersBody struct {
		Users []supertools.User `json:"users"`
	}
	modulesBody struct {
		Modules []supertools.Module `json:"modules"`
	}
	errorBody struct {
		Error string `json:"error"`
	}
)

func (c *Client) SearchUsers(ctx context.Context, query string) ([]supertools.User, error) {
	var body usersBody
	if err := c.get(ctx, searchPath, "q", query, &body); err != nil {
		return nil, err
	}
	if body.Users == nil {
		body.Users = []supertools.User{}
	}
	return body.Users, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (supertools.User, error) {
	var body usersBody
	if err := c.get(ctx, searchPath, "userId", id, &body); err != nil {
		return supertools.User{}, err
	}
	for _, u := range body.Users {
		if u.ID == id {
			return u, nil
		}
	}
	if len(body.Users) > 0 {
		return body.Users[0], nil
	}
	return supertools.User{}, supertools.ErrUserNotFound
}

func (c *Client) Modules(ctx context.Context, courseID string) ([]supertools.Module, error) {
	var body modulesBody
	if err := c.get(ctx, modulesPath, "courseId", courseID, &body); err != nil {
		return nil, err
	}
	if body.Modules == nil {
		body.Modules = []supertools.Module{}
	}
	return body.Modules, nil
}

func (c *Client) Enroll(ctx context.Context, req supertools.EnrollRequest) error {
	return c.post(ctx, enrollPath, req)
}

func (c *Client) Progress(ctx context.Context, req supertools.ProgressRequest) error {
	return c.post(ctx, progressPath, req)
}

func (c *Client) Pod(ctx context.Context, req supertools.PodRequest) error {
	return c.post(ctx, podPath, req)
}

func (c *Client) get(ctx context.Context, path, param, value string, out interface{}) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam(param, value).
		Get(path)
	if err != nil {
		return errors.Wrap(err, "GET "+path)
	}
	if err = checkResponse(resp); err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return errors.Wrap(err, "decoding "+path+" response")
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return errors.Wrap(err, "POST "+path)
	}
	return checkResponse(resp)
}

// checkResponse turns a non-2xx answer into a *supertools.APIError carrying the body's `error` field.
func checkResponse(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}
	apiErr := &supertools.APIError{Status: code}
	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		apiErr.Message = body.Error
	}
	return apiErr
}
