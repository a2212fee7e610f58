package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voxdigify/crm-api/internal/core/domain"
	"github.com/voxdigify/crm-api/internal/core/ports"
)

// RecordHandler serves the shared CRUD and summary endpoints for one CRM
// entity. R is the entity's create-request schema, T its domain type.
type RecordHandler[R any, T domain.Record[T]] struct {
	service  ports.RecordService[T]
	toDomain func(R) (T, error)
	entity   string
}

func NewRecordHandler[R any, T domain.Record[T]](service ports.RecordService[T], entity string, toDomain func(R) (T, error)) *RecordHandler[R, T] {
	return &RecordHandler[R, T]{service: service, toDomain: toDomain, entity: entity}
}

// List handles GET / — every record, most recent first.
func (h *RecordHandler[R, T]) List(c echo.Context) error {
	rows, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}

// Create handles POST /. A client-supplied _id is rejected rather than
// silently ignored; required fields are enforced by the request schema.
func (h *RecordHandler[R, T]) Create(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if _, ok := probe["_id"]; ok {
		return echo.NewHTTPError(http.StatusBadRequest, "do not include _id in the request body")
	}

	var req R
	if err := json.Unmarshal(body, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rec, err := h.toDomain(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), rec)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Delete handles DELETE /:id.
func (h *RecordHandler[R, T]) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("%s deleted successfully", h.entity),
	})
}

// Summary handles GET /summary — counts grouped by the entity's grouping
// field, the input to the entity's chart view.
func (h *RecordHandler[R, T]) Summary(c echo.Context) error {
	counts, err := h.service.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, counts)
}
