package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"orderdash/internal/errors"
	"orderdash/internal/service"
	"orderdash/internal/web"
)

// OrderHandler handles the add-order and delete-order routes.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// AddOrderForm represents the add-order form fields. Amount stays a string
// until the service parses it, so a malformed value re-renders instead of
// binding to zero.
type AddOrderForm struct {
	ProductName string `form:"product_name" validate:"required"`
	Amount      string `form:"amount" validate:"required"`
}

type addOrderData struct {
	Flash *web.Flash
}

// ShowAddOrder renders the add-order form.
func (h *OrderHandler) ShowAddOrder(c echo.Context) error {
	return c.Render(http.StatusOK, "add_order.html", addOrderData{Flash: web.PopFlash(c)})
}

// AddOrder validates and persists a new order, then redirects to the
// dashboard. Any validation failure re-renders the form with nothing written.
func (h *OrderHandler) AddOrder(c echo.Context) error {
	var form AddOrderForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&form); err != nil {
		return h.renderAddOrderFailure(c, errors.ErrMissingField.Error())
	}

	_, err := h.orderService.AddOrder(c.Request().Context(), form.ProductName, form.Amount)
	if err != nil {
		switch err {
		case errors.ErrMissingField, errors.ErrInvalidAmount:
			return h.renderAddOrderFailure(c, err.Error())
		default:
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
		}
	}

	web.SetFlash(c, "Order added.", "success")
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// DeleteOrder removes an order by its path id. An unknown or already deleted
// id is a 404, never a silent success.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	if err := h.orderService.DeleteOrder(c.Request().Context(), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	web.SetFlash(c, "Order deleted.", "danger")
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *OrderHandler) renderAddOrderFailure(c echo.Context, message string) error {
	return c.Render(http.StatusOK, "add_order.html", addOrderData{
		Flash: &web.Flash{Message: message, Category: "danger"},
	})
}
