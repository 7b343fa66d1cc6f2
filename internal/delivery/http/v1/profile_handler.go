package v1

import (
	"io"
	"net/http"
	"strings"

	"go-talent-directory/internal/domain"
	"go-talent-directory/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the authenticated "my profile" endpoints.
type ProfileHandler struct {
	talentUC domain.TalentUsecase
}

// GetMyProfile godoc
// @Summary      Own talent profile
// @Tags         me
// @Produce      json
// @Success      200  {object}  domain.TalentProfile
// @Failure      401  {object}  response.Response
// @Router       /talents/me/profile/ [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	profile, err := h.talentUC.MyProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateMyProfile godoc
// @Summary      Patch own profile
// @Description  Accepts partial JSON fields, or multipart form data with a "photo" file
// @Tags         me
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ProfileUpdateInput  false  "Fields to update"
// @Success      200   {object}  domain.TalentProfile
// @Failure      400   {object}  response.Response
// @Router       /talents/me/profile/ [patch]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	contentType := c.GetHeader("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		h.updatePhoto(c)
		return
	}

	var input domain.ProfileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	profile, err := h.talentUC.UpdateMyProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) updatePhoto(c *gin.Context) {
	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		c.Error(apperror.BadRequest("Foto wajib disertakan pada field 'photo'"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.BadRequest("Gagal membaca file foto"))
		return
	}

	profile, err := h.talentUC.UpdateMyPhoto(c.Request.Context(), data)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
