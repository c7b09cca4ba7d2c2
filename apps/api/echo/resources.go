package echoapi

import (
	"bytes"
	"net/http"
	"net/mail"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/accredipro/institute/core"
	"github.com/accredipro/institute/core/resource"
)

const reportTemplate = "report"

type (
	resourceAPI struct {
		svc     *resource.Service
		mailSvc core.EmailService
		logger  core.Logger
	}

	stateResponse struct {
		Type          resource.Kind   `json:"type"`
		SchemaVersion int             `json:"schemaVersion"`
		SavedAt       *time.Time      `json:"savedAt"`
		Data          resource.Widget `json:"data"`
	}

	saveResponse struct {
		Saved   bool      `json:"saved"`
		SavedAt time.Time `json:"savedAt"`
	}

	emailReportResponse struct {
		To        string `json:"to"`
		Reference string `json:"reference"`
	}
)

func registerResourceAPI(group *echo.Group, jwt echo.MiddlewareFunc, svc *resource.Service, mailSvc core.EmailService, logger core.Logger) {
	api := resourceAPI{svc: svc, mailSvc: mailSvc, logger: logger}

	g := group.Group("/resources")
	g.GET("", api.list)
	g.GET("/:type", api.describe)
	g.POST("/:type/evaluate", api.evaluate)
	g.POST("/:type/report", api.report)
	g.POST("/:type/report/email", api.emailReport, jwt)

	state := g.Group("/:type/state", jwt)
	state.GET("", api.getState)
	state.PUT("", api.saveState)
	state.DELETE("", api.deleteState)
}

func kindParam(ctx echo.Context) (resource.Kind, error) {
	return resource.Resolve(ctx.Param("type"))
}

func (api resourceAPI) list(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, resource.Catalog())
}

func (api resourceAPI) describe(ctx echo.Context) error {
	k, err := kindParam(ctx)
	if err != nil {
		return err
	}
	d, err := api.svc.Describe(k)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, d)
}

func (api resourceAPI) evaluate(ctx echo.Context) error {
	k, err := kindParam(ctx)
	if err != nil {
		return err
	}
	body, err := readBody(ctx)
	if err != nil {
		return err
	}
	ev, err := api.svc.Evaluate(k, body)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ev)
}

// report responds with the printable HTML report, or its JSON form when ?format=json.
func (api resourceAPI) report(ctx echo.Context) error {
	k, err := kindParam(ctx)
	if err != nil {
		return err
	}
	body, err := readBody(ctx)
	if err != nil {
		return err
	}
	r, err := api.svc.Report(k, body)
	if err != nil {
		return err
	}
	if ctx.QueryParam("format") == "json" {
		return ctx.JSON(http.StatusOK, r)
	}
	html, err := resource.RenderReport(r)
	if err != nil {
		return errors.Wrap(err, "rendering report")
	}
	return ctx.HTMLBlob(http.StatusOK, html)
}

// emailReport sends the printable report to the signed in user as an HTML attachment.
func (api resourceAPI) emailReport(ctx echo.Context) error {
	k, err := kindParam(ctx)
	if err != nil {
		return err
	}
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}
	to := core.CleanString(claims.Email, true /* lower */)
	if to == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "email", Error: "this field is required"})
	}
	body, err := readBody(ctx)
	if err != nil {
		return err
	}
	r, err := api.svc.Report(k, body)
	if err != nil {
		return err
	}
	html, err := resource.RenderReport(r)
	if err != nil {
		return errors.Wrap(err, "rendering report")
	}

	msg := &core.EmailMessage{
		To:           []mail.Address{{Name: claims.Name, Address: to}},
		Subject:      "Your " + r.Title,
		TemplateName: reportTemplate,
		TemplateData: r,
	}
	if err = msg.Attach(bytes.NewReader(html), k.Key()+"-report-"+r.Reference+".html", "text/html"); err != nil {
		return errors.Wrap(err, "attaching report")
	}
	api.mailSvc.SendMessages(msg)
	return ctx.JSON(http.StatusAccepted, emailReportResponse{To: to, Reference: r.Reference})
}

func (api resourceAPI) getState(ctx echo.Context) error {
	k, err := kindParam(ctx)
	if err != nil {
		return err
	}
	owner, err := ownerID(ctx)
	if err != nil {
		return err
	}
	w, env, err := api.svc.LoadState(ctx.Request().Context(), owner, k, nil)
	if err != nil {
		return err
	}
	res := stateResponse{Type: k, SchemaVersion: k.SchemaVersion(), Data: w}
	if env != nil {
		res.SavedAt = &env.SavedAt
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api resourceAPI) saveState(ctx echo.Context) error {
	k, err := kindParam(ctx)
	if err != nil {
		return err
	}
	owner, err := ownerID(ctx)
	if err != nil {
		return err
	}
	var body stateBody
	if err = body.Bind(ctx); err != nil {
		return err
	}
	env, saved, err := api.svc.SaveState(ctx.Request().Context(), owner, k, body.Data, body.SavedAt, body.ClientID)
	if err != nil {
		return err
	}
	if !saved {
		api.logger.Debug("resource: stale " + k.Key() + " state ignored")
	}
	return ctx.JSON(http.StatusOK, saveResponse{Saved: saved, SavedAt: env.SavedAt})
}

func (api resourceAPI) deleteState(ctx echo.Context) error {
	k, err := kindParam(ctx)
	if err != nil {
		return err
	}
	owner, err := ownerID(ctx)
	if err != nil {
		return err
	}
	err = api.svc.DeleteState(ctx.Request().Context(), owner, k)
	if err != nil && errors.Cause(err) != resource.ErrStateNotFound {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
