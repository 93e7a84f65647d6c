package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	app "github.com/nucareers/career-portal/internal/application/graduate"
)

type GraduateHandler struct {
	list   app.ListGraduates
	get    app.GetGraduate
	update app.UpdateGraduateProfile
	remove app.DeleteGraduate
	log    logrus.FieldLogger
}

func NewGraduateHandler(
	list app.ListGraduates,
	get app.GetGraduate,
	update app.UpdateGraduateProfile,
	remove app.DeleteGraduate,
	log logrus.FieldLogger,
) *GraduateHandler {
	return &GraduateHandler{list: list, get: get, update: update, remove: remove, log: log}
}

func (h *GraduateHandler) ListGraduates(c echo.Context) error {
	var q listGraduatesQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid query parameters", nil)
	}
	if errorMessages, ok := q.Ok(); !ok {
		return fail(c, http.StatusBadRequest, "Invalid query parameters", errorMessages)
	}

	out, err := h.list.Execute(c.Request().Context(), app.ListGraduatesInput{
		Page:   q.Page,
		Limit:  q.Limit,
		Search: q.Search,
	})
	if err != nil {
		h.log.WithError(err).Error("list graduates failed")
		return fail(c, http.StatusInternalServerError, "Failed to list graduates", nil)
	}

	return respond(c, http.StatusOK, out, "")
}

func (h *GraduateHandler) GetGraduate(c echo.Context) error {
	out, err := h.get.Execute(c.Request().Context(), app.GetGraduateInput{ID: c.Param("id")})
	if err != nil {
		return h.lookupFailure(c, err, "Failed to get graduate")
	}
	return respond(c, http.StatusOK, out, "")
}

func (h *GraduateHandler) UpdateGraduate(c echo.Context) error {
	var req updateGraduateRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body", nil)
	}
	if errorMessages, ok := req.Ok(); !ok {
		return fail(c, http.StatusBadRequest, "Invalid request body", errorMessages)
	}

	out, err := h.update.Execute(c.Request().Context(), app.UpdateGraduateProfileInput{
		ID:     c.Param("id"),
		Caller: callerFrom(c),
		Patch:  req.toPatch(),
	})
	if err != nil {
		if errors.Is(err, app.ErrEmptyPatch) {
			return fail(c, http.StatusBadRequest, "No editable fields supplied", nil)
		}
		return h.lookupFailure(c, err, "Failed to update graduate")
	}

	return respond(c, http.StatusOK, out, "Profile updated")
}

func (h *GraduateHandler) DeleteGraduate(c echo.Context) error {
	err := h.remove.Execute(c.Request().Context(), app.DeleteGraduateInput{
		ID:     c.Param("id"),
		Caller: callerFrom(c),
	})
	if err != nil {
		return h.lookupFailure(c, err, "Failed to delete graduate")
	}
	return respond(c, http.StatusOK, nil, "Graduate deleted")
}

func (h *GraduateHandler) lookupFailure(c echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, app.ErrForbidden):
		return fail(c, http.StatusForbidden, "Forbidden", nil)
	case errors.Is(err, app.ErrInvalidGraduateID):
		return fail(c, http.StatusBadRequest, "Invalid graduate id", nil)
	case errors.Is(err, app.ErrGraduateNotFound):
		return fail(c, http.StatusNotFound, "Graduate not found", nil)
	default:
		h.log.WithError(err).WithField("id", c.Param("id")).Error(message)
		return fail(c, http.StatusInternalServerError, message, nil)
	}
}
