package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/CammeCommerce/Backend-sub000/internal/excel"
	"github.com/CammeCommerce/Backend-sub000/internal/service"
	"github.com/CammeCommerce/Backend-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates service/excel errors into the uniform
// envelope. Anything unrecognized is a server error.
func respondServiceError(c *gin.Context, err error) {
	var colErr *excel.InvalidColumnLabelError
	var numErr *excel.InvalidNumericFieldError

	switch {
	case errors.Is(err, service.ErrDuplicateMatchingRule):
		util.Error(c, http.StatusConflict, util.CodeConflict, err.Error())
	case errors.Is(err, service.ErrRecordNotFound),
		errors.Is(err, service.ErrNoRecordsFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, err.Error())
	case errors.Is(err, excel.ErrEmptySheet),
		errors.As(err, &colErr),
		errors.As(err, &numErr):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal error")
	}
}

// idParam parses the :id path parameter.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// dateQuery parses an optional YYYY-MM-DD query parameter. The end date is
// treated as inclusive by callers adding one day.
func dateQuery(c *gin.Context, name string) (*time.Time, bool) {
	s := c.Query(name)
	if s == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, name+" must be YYYY-MM-DD")
		return nil, false
	}
	return &t, true
}

// boolQuery parses an optional tri-state boolean query parameter; absence
// means "don't care".
func boolQuery(c *gin.Context, name string) (*bool, bool) {
	s := c.Query(name)
	if s == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, name+" must be true or false")
		return nil, false
	}
	return &v, true
}

// uploadBytes reads the "file" part of a multipart upload.
func uploadBytes(c *gin.Context, maxBytes int64) ([]byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "file is required")
		return nil, false
	}
	if maxBytes > 0 && fileHeader.Size > maxBytes {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "file too large")
		return nil, false
	}
	f, err := fileHeader.Open()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "cannot open uploaded file")
		return nil, false
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "cannot read uploaded file")
		return nil, false
	}
	return buf, true
}
