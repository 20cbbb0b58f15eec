package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

// currentEnterpriseID extracts the authenticated enterprise ID stored in
// the context by the JWT middleware and converts it to uint64. JWT
// numeric claims decode as float64, so several representations are
// accepted.
func currentEnterpriseID(c echo.Context) (uint64, error) {
	v := c.Get("enterprise_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid enterprise_id in context")
}

// pathID parses the :id path parameter of the current route.
func pathID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// isAdmin reports whether the JWT role claim marks this request as
// coming from an administrator account.
func isAdmin(c echo.Context) bool {
	role, _ := c.Get("role").(string)
	return role == "ADMIN"
}
