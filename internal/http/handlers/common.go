package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"buspass/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func init() {
	binding.EnableDecoderDisallowUnknownFields = true
}

// DecodeStrictJSON binds exactly one JSON document into dst through gin's JSON binding, so
// unknown fields and `binding` tag failures are rejected. It answers 400 itself and
// reports false on failure.
func DecodeStrictJSON[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		respondError(c, http.StatusBadRequest, "validation_error", "request body is empty")
		return false
	}
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "request body could not be read")
		return false
	}
	// json.Valid also fails on a second document after the first.
	if !json.Valid(raw) {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid request body: malformed JSON")
		return false
	}
	if err := binding.JSON.BindBody(raw, dst); err != nil {
		RespondDomainError(c, domain.BindingError(dst, err))
		return false
	}
	return true
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", name+": must be a positive integer")
		return 0, false
	}
	return id, true
}

func sendPDF(c *gin.Context, filename string, body []byte) {
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", body)
}
