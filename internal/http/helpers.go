package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/catalog/internal/schema"
	"github.com/mrlokans/catalog/internal/services"
)

const maxBodyBytes = 1 << 20

// parseIDParam extracts the "id" path parameter. Values that are not a
// positive 32-bit integer can never name a stored row, so they are reported
// as the resource not being found, quoting the raw value.
func parseIDParam(c *gin.Context, resource string) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, services.NewNotFoundError(resource, raw)
	}
	return uint(id), nil
}

// readBody reads the request body, capped at maxBodyBytes.
func readBody(c *gin.Context) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		return nil, schema.BodyError("could not be read")
	}
	return body, nil
}
