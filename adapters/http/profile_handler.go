package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	profileUC "github.com/khoahotran/devfolio/internal/application/usecase/profile"
	"github.com/khoahotran/devfolio/pkg/apperror"
)

type ProfileHandler struct {
	profileUseCase     *profileUC.ProfileUseCase
	savePictureUseCase *profileUC.SavePictureUseCase
}

func NewProfileHandler(profileUC *profileUC.ProfileUseCase, savePictureUC *profileUC.SavePictureUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase:     profileUC,
		savePictureUseCase: savePictureUC,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context(), profileUC.GetProfileInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := profileUC.UpdateProfileInput{
		OwnerID:  ownerID,
		Username: req.Username,
		Title:    req.Title,
		Bio:      req.Bio,
	}

	output, err := h.profileUseCase.ExecuteUpdateProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

// SavePicture accepts multipart form data: an optional "file" part plus the
// transform fields "scale", "offset_x", "offset_y".
func (h *ProfileHandler) SavePicture(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	input := profileUC.SavePictureInput{OwnerID: ownerID}
	if err := parsePictureTransform(c, &input); err != nil {
		c.Error(apperror.NewInvalidInput("invalid picture transform", err))
		return
	}

	fileHeader, err := c.FormFile("file")
	switch {
	case err == nil:
		file, err := fileHeader.Open()
		if err != nil {
			c.Error(apperror.NewInternal("failed to open file", err))
			return
		}
		defer file.Close()
		input.File = file
	case errors.Is(err, http.ErrMissingFile):
		// Transform-only request, nothing to upload.
	default:
		c.Error(apperror.NewInvalidInput("invalid file upload", err))
		return
	}

	output, err := h.savePictureUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"picture_url": output.PictureURL})
}

// parsePictureTransform fills only the transform fields the form actually
// carries. Absent fields stay nil so the stored values survive.
func parsePictureTransform(c *gin.Context, input *profileUC.SavePictureInput) error {
	if v := c.PostForm("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		input.Scale = &scale
	}
	if v := c.PostForm("offset_x"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		input.OffsetX = &offset
	}
	if v := c.PostForm("offset_y"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		input.OffsetY = &offset
	}
	return nil
}
