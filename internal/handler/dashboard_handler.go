package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"orderdash/internal/errors"
	"orderdash/internal/model"
	"orderdash/internal/service"
	"orderdash/internal/web"
)

// DashboardHandler renders the order list with search and counters.
type DashboardHandler struct {
	orderService service.OrderService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(orderService service.OrderService) *DashboardHandler {
	return &DashboardHandler{orderService: orderService}
}

type dashboardData struct {
	Flash        *web.Flash
	Username     string
	Search       string
	Orders       []model.Order
	AccountCount int64
	OrderCount   int64
}

// Dashboard lists orders, filtered by the optional search substring. An empty
// search string is the full list, newest first.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	search := c.QueryParam("search")

	orders, err := h.orderService.ListOrders(ctx, search)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	stats, err := h.orderService.Stats(ctx)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	username, _ := c.Get("username").(string)
	return c.Render(http.StatusOK, "dashboard.html", dashboardData{
		Flash:        web.PopFlash(c),
		Username:     username,
		Search:       search,
		Orders:       orders,
		AccountCount: stats.Accounts,
		OrderCount:   stats.Orders,
	})
}
