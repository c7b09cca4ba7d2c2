package echoapi

import (
	"net/http"
	"net/mail"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/accredipro/institute/core"
	"github.com/accredipro/institute/core/registry"
)

const nurtureTemplate = "nurture"

type (
	diplomaAPI struct {
		mailSvc  core.EmailService
		validate *validator.Validate
	}

	diplomaResponse struct {
		registry.Entry
		Summary registry.Summary `json:"summary"`
	}

	previewRequest struct {
		Email     string `json:"email" validate:"required,email"`
		FirstName string `json:"firstName" validate:"required"`
	}
)

func registerDiplomaAPI(group *echo.Group, jwt echo.MiddlewareFunc, mailSvc core.EmailService, validate *validator.Validate) {
	api := diplomaAPI{mailSvc: mailSvc, validate: validate}

	g := group.Group("/diplomas")
	g.GET("", api.list)
	g.GET("/:slug", api.retrieve)
	g.GET("/:slug/nurture", api.nurture)
	g.GET("/:slug/dm", api.dms)
	g.POST("/:slug/nurture/:id/preview", api.preview, jwt, adminMiddleware())
}

// entry resolves the slug param. Unknown slugs respond with the closest known slug, if any.
func (api diplomaAPI) entry(ctx echo.Context) (registry.Entry, error) {
	slug := ctx.Param("slug")
	e, err := registry.Find(slug)
	if err == nil {
		return e, nil
	}
	res := echo.Map{"error": err.Error()}
	if suggestion := registry.Suggest(slug); suggestion != "" {
		res["suggestion"] = suggestion
	}
	return registry.Entry{}, echo.NewHTTPError(http.StatusNotFound, res)
}

func (api diplomaAPI) list(ctx echo.Context) error {
	all := registry.All()
	res := make([]registry.Summary, 0, len(all))
	for _, e := range all {
		res = append(res, e.Summary())
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api diplomaAPI) retrieve(ctx echo.Context) error {
	e, err := api.entry(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, diplomaResponse{Entry: e, Summary: e.Summary()})
}

func (api diplomaAPI) nurture(ctx echo.Context) error {
	e, err := api.entry(ctx)
	if err != nil {
		return err
	}
	var window DayWindow
	if err = window.Bind(ctx); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, e.NurtureSequence.Between(window.From, window.To))
}

func (api diplomaAPI) dms(ctx echo.Context) error {
	e, err := api.entry(ctx)
	if err != nil {
		return err
	}
	var window DayWindow
	if err = window.Bind(ctx); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, e.DMSequence.Between(window.From, window.To))
}

// preview renders a nurture email for a recipient and sends it to them.
func (api diplomaAPI) preview(ctx echo.Context) error {
	e, err := api.entry(ctx)
	if err != nil {
		return err
	}
	email, ok := e.NurtureSequence.ByID(ctx.Param("id"))
	if !ok {
		return errHttpNotFound
	}

	var req previewRequest
	if err = ctx.Bind(&req); err != nil {
		return core.NewValidationError(errors.New("invalid preview request"))
	}
	req.Email = core.CleanString(req.Email, true /* lower */)
	req.FirstName = core.CleanString(req.FirstName)
	if err = api.validate.Struct(req); err != nil {
		return err
	}

	rendered := email.Render(map[string]string{"firstName": req.FirstName})
	api.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: req.FirstName, Address: req.Email}},
		Subject:      rendered.Subject,
		TemplateName: nurtureTemplate,
		TemplateData: rendered,
	})
	return ctx.JSON(http.StatusOK, rendered)
}
