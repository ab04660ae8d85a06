package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"orderdash/internal/auth"
	"orderdash/internal/config"
	"orderdash/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	sessionStore auth.SessionStoreInterface,
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	orderHandler *handler.OrderHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Public routes
	e.GET("/login", authHandler.ShowLogin)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// Secured routes: the session cookie must carry a valid, unrevoked token.
	// Failures redirect to the login page instead of returning 401.
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.SessionSecret),
		TokenLookup: "cookie:" + auth.SessionCookieName,
		ErrorHandler: func(c echo.Context, err error) error {
			return c.Redirect(http.StatusSeeOther, "/login")
		},
	}), sessionGuard(sessionStore))

	secured.GET("/", dashboardHandler.Dashboard)
	secured.GET("/dashboard", dashboardHandler.Dashboard)
	secured.GET("/add_order", orderHandler.ShowAddOrder)
	secured.POST("/add_order", orderHandler.AddOrder)
	secured.GET("/delete_order/:id", orderHandler.DeleteOrder)
}

// sessionGuard rejects tokens revoked by logout and exposes the session
// username to handlers. The revocation check fails open when the store is
// unreachable.
func sessionGuard(store auth.SessionStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			if jti, _ := claims["jti"].(string); jti != "" {
				if revoked, _ := store.IsRevoked(c.Request().Context(), jti); revoked {
					return c.Redirect(http.StatusSeeOther, "/login")
				}
			}

			if username, ok := claims["username"].(string); ok {
				c.Set("username", username)
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
