package v1

import (
	"net/http"
	"strconv"

	"go-talent-directory/internal/domain"
	"go-talent-directory/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

// List godoc
// @Summary      Own skills
// @Tags         me
// @Produce      json
// @Success      200  {array}  domain.TalentSkill
// @Router       /talents/me/skills/ [get]
// @Security     BearerAuth
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

// Add godoc
// @Summary      Attach a skill
// @Tags         me
// @Accept       json
// @Produce      json
// @Param        body  body      domain.SkillInput  true  "Skill name and level"
// @Success      201   {object}  domain.TalentSkill
// @Failure      409   {object}  response.Response
// @Router       /talents/me/skills/ [post]
// @Security     BearerAuth
func (h *SkillHandler) Add(c *gin.Context) {
	var input domain.SkillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	skill, err := h.skillUC.Add(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, skill)
}

// Remove godoc
// @Summary      Detach a skill
// @Tags         me
// @Param        id  path  int  true  "Talent skill ID"
// @Success      204
// @Failure      404  {object}  response.Response
// @Router       /talents/me/skills/{id}/ [delete]
// @Security     BearerAuth
func (h *SkillHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.NotFound("Skill not found"))
		return
	}

	if err := h.skillUC.Remove(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
