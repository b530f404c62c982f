package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// deletedResponse is the envelope returned by record deletion endpoints.
type deletedResponse struct {
	Message string `json:"message"`
}

// pathID parses the :id path parameter shared by the record routes.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
