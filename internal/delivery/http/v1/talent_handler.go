package v1

import (
	"net/http"
	"strconv"

	"go-talent-directory/internal/domain"
	"go-talent-directory/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// TalentHandler serves the public directory endpoints. Responses are the raw
// documented JSON shapes, not the envelope.
type TalentHandler struct {
	talentUC domain.TalentUsecase
}

// Public godoc
// @Summary      Search public talents
// @Description  Filters by free-text search, exact study program and skill name
// @Tags         talents
// @Produce      json
// @Param        search  query     string  false  "Matches name, NIM, study program and skill names"
// @Param        prodi   query     string  false  "Exact study program (case-insensitive)"
// @Param        skill   query     string  false  "Skill name contains"
// @Success      200     {array}   domain.TalentProfile
// @Router       /talents/public/ [get]
func (h *TalentHandler) Public(c *gin.Context) {
	filter := domain.SearchFilter{
		Query: c.Query("search"),
		Prodi: c.Query("prodi"),
		Skill: c.Query("skill"),
	}

	talents, err := h.talentUC.Search(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, talents)
}

// Latest godoc
// @Summary      Five most recently registered public talents
// @Tags         talents
// @Produce      json
// @Success      200  {array}  domain.TalentProfile
// @Router       /talents/latest/ [get]
func (h *TalentHandler) Latest(c *gin.Context) {
	talents, err := h.talentUC.Latest(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, talents)
}

// Top godoc
// @Summary      Top talents by skill then experience count
// @Tags         talents
// @Produce      json
// @Success      200  {array}  domain.TalentProfile
// @Router       /talents/top/ [get]
func (h *TalentHandler) Top(c *gin.Context) {
	talents, err := h.talentUC.Top(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, talents)
}

// Statistics godoc
// @Summary      Public dashboard counters
// @Tags         talents
// @Produce      json
// @Success      200  {object}  domain.Statistics
// @Router       /talents/statistics/ [get]
func (h *TalentHandler) Statistics(c *gin.Context) {
	stats, err := h.talentUC.Statistics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Detail godoc
// @Summary      Full talent profile
// @Description  Records a profile view as a side effect
// @Tags         talents
// @Produce      json
// @Param        id   path      int  true  "Talent ID"
// @Success      200  {object}  domain.TalentProfile
// @Failure      404  {object}  response.Response
// @Router       /talents/{id}/ [get]
func (h *TalentHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.NotFound("Talent not found"))
		return
	}

	profile, err := h.talentUC.Detail(c.Request.Context(), id, c.ClientIP())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
