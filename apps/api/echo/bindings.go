package echoapi

import (
	"encoding/json"
	"io/ioutil"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/accredipro/institute/core"
	"github.com/accredipro/institute/core/nurture"
)

var (
	fromParam = "from"
	toParam   = "to"
)

// DayWindow is the inclusive range of funnel days selected by the from & to query params.
type DayWindow struct {
	From int
	To   int
}

func (w *DayWindow) Bind(ctx echo.Context) error {
	w.From, w.To = 0, nurture.WindowDays

	var flds []core.FieldError
	parse := func(param string, dst *int) {
		val := strings.TrimSpace(ctx.QueryParam(param))
		if val == "" {
			return
		}
		day, err := strconv.Atoi(val)
		if err != nil || day < 0 {
			flds = append(flds, core.FieldError{Field: param, Error: "must be a non-negative number of days"})
			return
		}
		*dst = day
	}
	parse(fromParam, &w.From)
	parse(toParam, &w.To)

	if len(flds) == 0 && w.From > w.To {
		flds = append(flds, core.FieldError{Field: fromParam, Error: "must not be after " + toParam})
	}
	if len(flds) > 0 {
		return core.NewValidationError(nil, flds...)
	}
	return nil
}

// stateBody is a widget state sent by a client. A zero SavedAt is stamped by the server.
type stateBody struct {
	Data     json.RawMessage `json:"data"`
	SavedAt  time.Time       `json:"savedAt"`
	ClientID string          `json:"clientId"`
}

func (b *stateBody) Bind(ctx echo.Context) error {
	if err := ctx.Bind(b); err != nil {
		return core.NewValidationError(errors.New("invalid widget state"))
	}
	if len(b.Data) == 0 || string(b.Data) == "null" {
		return core.NewValidationError(nil, core.FieldError{Field: "data", Error: "this field is required"})
	}
	return nil
}

func readBody(ctx echo.Context) ([]byte, error) {
	body, err := ioutil.ReadAll(ctx.Request().Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading request body")
	}
	return body, nil
}
