package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/customer-admin/customer-admin/internal/metrics"
	"github.com/customer-admin/customer-admin/internal/model"
	"github.com/customer-admin/customer-admin/internal/repository"
	echo "github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrUnsupportedMedia):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]any{
		"status":  status,
		"error":   http.StatusText(status),
		"message": message,
	})
}

func writeError(c echo.Context, op string, err error) error {
	status := statusOf(err)
	outcome := "client_error"
	if status >= 500 {
		outcome = "error"
		log.Errorf("%s failed: %v", op, err)
	}
	metrics.CustomerOps.WithLabelValues(op, outcome).Inc()
	return errorJSON(c, status, err.Error())
}

// requireJSON enforces Content-Type: application/json before the body is read.
func requireJSON(c echo.Context) error {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	if ct != echo.MIMEApplicationJSON {
		return model.NewUnsupportedMedia("Content-Type must be application/json")
	}
	return nil
}

// decodeBody reads the request body into a generic JSON object so field
// presence and value types can be checked strictly.
func decodeBody(c echo.Context) (map[string]any, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, model.NewValidation("invalid customer: body of request contained bad or no data")
	}
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, model.NewValidation("invalid customer: body of request contained bad or no data")
	}
	return data, nil
}

func notFoundErr(id string) error {
	return model.NewNotFound(fmt.Sprintf("Customer with id [%s] was not found", id))
}

func createCustomerHandler(repo repository.CustomersRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := requireJSON(c); err != nil {
			return writeError(c, "create", err)
		}
		data, err := decodeBody(c)
		if err != nil {
			return writeError(c, "create", err)
		}
		cust, err := model.DeserializeCustomer(data)
		if err != nil {
			return writeError(c, "create", err)
		}

		if err := repo.Create(c.Request().Context(), cust); err != nil {
			return writeError(c, "create", err)
		}

		metrics.CustomerOps.WithLabelValues("create", "ok").Inc()
		c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/customers/%d", cust.ID))
		return c.JSON(http.StatusCreated, cust)
	}
}

// listCustomersHandler filters by the first non-empty query parameter,
// checked in fixed order: name, email, phone_number, address, state.
func listCustomersHandler(repo repository.CustomersRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var (
			customers []model.Customer
			err       error
		)
		switch {
		case c.QueryParam("name") != "":
			customers, err = repo.FindByField(ctx, "name", c.QueryParam("name"))
		case c.QueryParam("email") != "":
			customers, err = repo.FindByField(ctx, "email", c.QueryParam("email"))
		case c.QueryParam("phone_number") != "":
			customers, err = repo.FindByField(ctx, "phone_number", c.QueryParam("phone_number"))
		case c.QueryParam("address") != "":
			customers, err = repo.FindByField(ctx, "address", c.QueryParam("address"))
		case c.QueryParam("state") != "":
			var state bool
			state, err = strconv.ParseBool(c.QueryParam("state"))
			if err != nil {
				return writeError(c, "list",
					model.NewValidation("invalid boolean for [state]: "+c.QueryParam("state")))
			}
			customers, err = repo.FindByState(ctx, state)
		default:
			customers, err = repo.FindAll(ctx)
		}
		if err != nil {
			// a failed filter query is a client-visible 400, store left untouched
			return writeError(c, "list", model.NewValidation(err.Error()))
		}

		if customers == nil {
			customers = []model.Customer{}
		}
		metrics.CustomerOps.WithLabelValues("list", "ok").Inc()
		return c.JSON(http.StatusOK, customers)
	}
}

func getCustomerHandler(repo repository.CustomersRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return writeError(c, "get", notFoundErr(c.Param("id")))
		}

		cust, err := repo.FindByID(c.Request().Context(), id)
		if err != nil {
			return writeError(c, "get", err)
		}
		if cust == nil {
			return writeError(c, "get", notFoundErr(c.Param("id")))
		}

		metrics.CustomerOps.WithLabelValues("get", "ok").Inc()
		return c.JSON(http.StatusOK, cust)
	}
}

// updateCustomerHandler replaces all mutable fields; the id always comes
// from the path, never from the body.
func updateCustomerHandler(repo repository.CustomersRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := requireJSON(c); err != nil {
			return writeError(c, "update", err)
		}

		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return writeError(c, "update", notFoundErr(c.Param("id")))
		}

		existing, err := repo.FindByID(c.Request().Context(), id)
		if err != nil {
			return writeError(c, "update", err)
		}
		if existing == nil {
			return writeError(c, "update", notFoundErr(c.Param("id")))
		}

		data, err := decodeBody(c)
		if err != nil {
			return writeError(c, "update", err)
		}
		cust, err := model.DeserializeCustomer(data)
		if err != nil {
			return writeError(c, "update", err)
		}

		cust.ID = id
		if err := repo.Update(c.Request().Context(), cust); err != nil {
			return writeError(c, "update", err)
		}

		metrics.CustomerOps.WithLabelValues("update", "ok").Inc()
		return c.JSON(http.StatusOK, cust)
	}
}

// deleteCustomerHandler is idempotent: deleting an absent id is still 204.
func deleteCustomerHandler(repo repository.CustomersRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			metrics.CustomerOps.WithLabelValues("delete", "ok").Inc()
			return c.NoContent(http.StatusNoContent)
		}

		existing, err := repo.FindByID(c.Request().Context(), id)
		if err != nil {
			return writeError(c, "delete", err)
		}
		if existing != nil {
			if err := repo.Delete(c.Request().Context(), id); err != nil {
				return writeError(c, "delete", err)
			}
		}

		metrics.CustomerOps.WithLabelValues("delete", "ok").Inc()
		return c.NoContent(http.StatusNoContent)
	}
}

// suspendCustomerHandler flips state true -> false; there is no reverse
// transition, and suspending twice is a conflict.
func suspendCustomerHandler(repo repository.CustomersRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return writeError(c, "suspend", notFoundErr(c.Param("id")))
		}

		cust, err := repo.FindByID(c.Request().Context(), id)
		if err != nil {
			return writeError(c, "suspend", err)
		}
		if cust == nil {
			return writeError(c, "suspend", notFoundErr(c.Param("id")))
		}
		if !cust.State {
			return writeError(c, "suspend",
				model.NewConflict(fmt.Sprintf("Customer with id [%d] is already suspended", id)))
		}

		cust.State = false
		if err := repo.Update(c.Request().Context(), cust); err != nil {
			return writeError(c, "suspend", err)
		}

		metrics.CustomerOps.WithLabelValues("suspend", "ok").Inc()
		return c.JSON(http.StatusOK, cust)
	}
}
