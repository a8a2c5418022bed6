package v1

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/hillcrest-schools/school-portal/internal/domain/listing"
	"github.com/hillcrest-schools/school-portal/internal/pkg/httputil"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"

	"github.com/gin-gonic/gin"
)

// multipartSlack leaves room for the form fields next to the file itself
const multipartSlack int64 = 1 << 20

// pageFromQuery reads limit, offset and sortOrder
func pageFromQuery(ctx *gin.Context) (listing.Page, error) {
	var page listing.Page

	if limit := ctx.Query("limit"); len(limit) > 0 {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return page, validators.Invalidf("invalid limit %q", limit)
		}
		page.Limit = n
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		n, err := strconv.Atoi(offset)
		if err != nil {
			return page, validators.Invalidf("invalid offset %q", offset)
		}
		page.Offset = n
	}

	page.SortOrder = ctx.Query("sortOrder")
	return page, nil
}

// boolQuery parses an optional boolean query parameter
func boolQuery(ctx *gin.Context, key string) (*bool, error) {
	raw := ctx.Query(key)
	if len(raw) == 0 {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, validators.Invalidf("invalid %s %q", key, raw)
	}
	return &b, nil
}

// multipartForm parses a multipart body capped at the upload limit
func multipartForm(ctx *gin.Context) (*multipart.Form, error) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, httputil.MaxUploadSize+multipartSlack)
	return ctx.MultipartForm()
}
