package v1

import (
	"net/http"
	"strconv"

	"go-talent-directory/internal/domain"
	"go-talent-directory/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	experienceUC domain.ExperienceUsecase
}

// List godoc
// @Summary      Own experiences
// @Tags         me
// @Produce      json
// @Success      200  {array}  domain.Experience
// @Router       /talents/me/experiences/ [get]
// @Security     BearerAuth
func (h *ExperienceHandler) List(c *gin.Context) {
	experiences, err := h.experienceUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, experiences)
}

// Add godoc
// @Summary      Add a work experience
// @Tags         me
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ExperienceInput  true  "Experience payload, omit end_date for ongoing"
// @Success      201   {object}  domain.Experience
// @Failure      400   {object}  response.Response
// @Router       /talents/me/experiences/ [post]
// @Security     BearerAuth
func (h *ExperienceHandler) Add(c *gin.Context) {
	var input domain.ExperienceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	exp, err := h.experienceUC.Add(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, exp)
}

// Remove godoc
// @Summary      Delete a work experience
// @Tags         me
// @Param        id  path  int  true  "Experience ID"
// @Success      204
// @Failure      404  {object}  response.Response
// @Router       /talents/me/experiences/{id}/ [delete]
// @Security     BearerAuth
func (h *ExperienceHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.NotFound("Experience not found"))
		return
	}

	if err := h.experienceUC.Remove(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
