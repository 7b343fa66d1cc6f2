package v1

import (
	"net/http"
	"strconv"

	"go-talent-directory/internal/domain"
	"go-talent-directory/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SocialLinkHandler struct {
	linkUC domain.SocialLinkUsecase
}

// List godoc
// @Summary      Own social links
// @Tags         me
// @Produce      json
// @Success      200  {array}  domain.SocialLink
// @Router       /talents/me/social-links/ [get]
// @Security     BearerAuth
func (h *SocialLinkHandler) List(c *gin.Context) {
	links, err := h.linkUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// Add godoc
// @Summary      Add a social link
// @Tags         me
// @Accept       json
// @Produce      json
// @Param        body  body      domain.SocialLinkInput  true  "Platform and handle"
// @Success      201   {object}  domain.SocialLink
// @Failure      400   {object}  response.Response
// @Router       /talents/me/social-links/ [post]
// @Security     BearerAuth
func (h *SocialLinkHandler) Add(c *gin.Context) {
	var input domain.SocialLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	link, err := h.linkUC.Add(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

// Remove godoc
// @Summary      Delete a social link
// @Tags         me
// @Param        id  path  int  true  "Social link ID"
// @Success      204
// @Failure      404  {object}  response.Response
// @Router       /talents/me/social-links/{id}/ [delete]
// @Security     BearerAuth
func (h *SocialLinkHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.NotFound("Social link not found"))
		return
	}

	if err := h.linkUC.Remove(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
