package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/bkaya/studentportal/internal/app/models/dto"
	"github.com/bkaya/studentportal/internal/app/services"
	"github.com/bkaya/studentportal/internal/middleware"
)

// MaterialController handles study material operations
type MaterialController struct {
	materialService services.MaterialService
	logger          zerolog.Logger
}

// NewMaterialController creates a new MaterialController
func NewMaterialController(materialService services.MaterialService, logger zerolog.Logger) *MaterialController {
	return &MaterialController{
		materialService: materialService,
		logger:          logger,
	}
}

// List returns all study materials
// @Summary List study materials
// @Description Returns every study material plus the distinct subject values for filtering
// @Tags materials
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MaterialListResponse} "Materials"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /materials [get]
func (c *MaterialController) List(ctx *gin.Context) {
	list, err := c.materialService.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list materials")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(list))
}

// Upload stores a new study material
// @Summary Upload study material
// @Description Uploads a file with its metadata. Admins and faculty only; the file extension must be on the allow-list.
// @Tags materials
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Material title"
// @Param description formData string false "Description"
// @Param subject formData string false "Subject"
// @Param fileType formData string false "File type label"
// @Param file formData file true "The file to upload"
// @Success 201 {object} dto.APIResponse{data=models.StudyMaterial} "Material uploaded"
// @Failure 400 {object} dto.APIResponse "Missing file or disallowed file type"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Insufficient permissions"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /materials [post]
func (c *MaterialController) Upload(ctx *gin.Context) {
	var req dto.UploadMaterialRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid material upload form")
		middleware.HandleBindingError(ctx, err)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Upload file is required")))
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)

	material, err := c.materialService.Upload(ctx.Request.Context(), userID, &req, file)
	if err != nil {
		c.logger.Warn().Err(err).Str("filename", file.Filename).Msg("Material upload rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(material))
}

// Download serves a stored material file
// @Summary Download study material
// @Description Streams the stored file as an attachment
// @Tags materials
// @Produce octet-stream
// @Security BearerAuth
// @Param id path int true "Material ID"
// @Success 200 {file} file "File content"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 404 {object} dto.APIResponse "Material not found"
// @Router /materials/{id}/download [get]
func (c *MaterialController) Download(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid material ID")))
		return
	}

	material, path, err := c.materialService.Download(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.FileAttachment(path, material.Filename)
}
