package v1

import (
	"net/http"

	"github.com/hillcrest-schools/school-portal/internal/domain/media"

	"github.com/gin-gonic/gin"
)

// MediaHandler defines the interface for the gallery and downloadable resources
type MediaHandler interface {
	UploadImage(ctx *gin.Context)
	ListImages(ctx *gin.Context)
	DeleteImageByID(ctx *gin.Context)
	UploadResource(ctx *gin.Context)
	ListResources(ctx *gin.Context)
	DeleteResourceByID(ctx *gin.Context)
}

type mediaHandler struct {
	galleryService  media.GalleryService
	resourceService media.ResourceService
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(galleryService media.GalleryService, resourceService media.ResourceService) MediaHandler {
	return &mediaHandler{
		galleryService:  galleryService,
		resourceService: resourceService,
	}
}

// UploadImage handles the multipart gallery upload
// @Summary Upload a gallery image
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image (image/*, up to 10MB)"
// @Param title formData string false "Title, defaults to the file name"
// @Param caption formData string false "Caption"
// @Param category formData string false "Category"
// @Success 201 {object} GalleryImageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /gallery [post]
func (handler *mediaHandler) UploadImage(ctx *gin.Context) {
	form, err := multipartForm(ctx)
	if err != nil {
		respondBadRequest(ctx, "form data", err)
		return
	}

	image, err := handler.galleryService.Upload(ctx, form)
	if err != nil {
		respondError(ctx, err, "uploading image")
		return
	}
	ctx.JSON(http.StatusCreated, NewGalleryImageResponse(image))
}

// ListImages handles the GET request listing the gallery
// @Summary List gallery images
// @Tags Gallery
// @Produce json
// @Param category query string false "Category"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} GalleryImageResponse
// @Failure 400 {object} ErrorResponse
// @Router /gallery [get]
func (handler *mediaHandler) ListImages(ctx *gin.Context) {
	query, err := mediaQuery(ctx)
	if err != nil {
		respondError(ctx, err, "listing images")
		return
	}

	images, err := handler.galleryService.List(ctx, query)
	if err != nil {
		respondError(ctx, err, "listing images")
		return
	}

	response := make([]GalleryImageResponse, 0, len(images))
	for _, image := range images {
		response = append(response, NewGalleryImageResponse(image))
	}
	ctx.JSON(http.StatusOK, response)
}

// DeleteImageByID handles the DELETE request removing an image and its blob
// @Summary Delete a gallery image by ID
// @Tags Gallery
// @Param id path string true "Image ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /gallery/{id} [delete]
func (handler *mediaHandler) DeleteImageByID(ctx *gin.Context) {
	if err := handler.galleryService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err, "deleting image")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// UploadResource handles the multipart resource upload
// @Summary Upload a downloadable resource
// @Tags Resources
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File (up to 10MB)"
// @Param title formData string false "Title, defaults to the file name"
// @Param description formData string false "Description"
// @Param category formData string false "Category"
// @Success 201 {object} ResourceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /resources [post]
func (handler *mediaHandler) UploadResource(ctx *gin.Context) {
	form, err := multipartForm(ctx)
	if err != nil {
		respondBadRequest(ctx, "form data", err)
		return
	}

	resource, err := handler.resourceService.Upload(ctx, form)
	if err != nil {
		respondError(ctx, err, "uploading resource")
		return
	}
	ctx.JSON(http.StatusCreated, NewResourceResponse(resource))
}

// ListResources handles the GET request listing resources
// @Summary List downloadable resources
// @Tags Resources
// @Produce json
// @Param category query string false "Category"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} ResourceResponse
// @Failure 400 {object} ErrorResponse
// @Router /resources [get]
func (handler *mediaHandler) ListResources(ctx *gin.Context) {
	query, err := mediaQuery(ctx)
	if err != nil {
		respondError(ctx, err, "listing resources")
		return
	}

	resources, err := handler.resourceService.List(ctx, query)
	if err != nil {
		respondError(ctx, err, "listing resources")
		return
	}

	response := make([]ResourceResponse, 0, len(resources))
	for _, resource := range resources {
		response = append(response, NewResourceResponse(resource))
	}
	ctx.JSON(http.StatusOK, response)
}

// DeleteResourceByID handles the DELETE request removing a resource and its blob
// @Summary Delete a downloadable resource by ID
// @Tags Resources
// @Param id path string true "Resource ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /resources/{id} [delete]
func (handler *mediaHandler) DeleteResourceByID(ctx *gin.Context) {
	if err := handler.resourceService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err, "deleting resource")
		return
	}
	ctx.Status(http.StatusNoContent)
}

func mediaQuery(ctx *gin.Context) (*media.MediaQuery, error) {
	page, err := pageFromQuery(ctx)
	if err != nil {
		return nil, err
	}

	query := media.NewMediaQuery()
	query.Category = ctx.Query("category")
	query.SortBy = ctx.Query("sortBy")
	query.Page = page
	return query, nil
}
