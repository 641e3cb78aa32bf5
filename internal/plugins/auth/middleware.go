package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// contextKeyUser is the Echo context key holding the resolved current user.
// Other plugins access it via GetUser.
const contextKeyUser = "auth_user"

// RequireSession returns middleware that resolves the current-user pointer
// and injects the user into the request context. Requests with no active
// session get a 401 JSON response.
func RequireSession(service SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := service.CurrentUser(c.Request().Context())
			if err != nil {
				return err
			}
			if user == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "unauthorized",
					"message": "no active session",
				})
			}

			c.Set(contextKeyUser, user)
			return next(c)
		}
	}
}

// GetUser retrieves the authenticated user from the Echo context. Returns
// nil if the request is not authenticated (middleware not applied).
func GetUser(c echo.Context) *User {
	user, ok := c.Get(contextKeyUser).(*User)
	if !ok {
		return nil
	}
	return user
}
