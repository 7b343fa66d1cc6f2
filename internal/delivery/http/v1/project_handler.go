package v1

import (
	"net/http"
	"strconv"

	"go-talent-directory/internal/domain"
	"go-talent-directory/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

// List godoc
// @Summary      Own portfolio projects
// @Tags         me
// @Produce      json
// @Success      200  {array}  domain.Project
// @Router       /talents/me/projects/ [get]
// @Security     BearerAuth
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Add godoc
// @Summary      Add a portfolio project
// @Tags         me
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ProjectInput  true  "Project payload"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  response.Response
// @Router       /talents/me/projects/ [post]
// @Security     BearerAuth
func (h *ProjectHandler) Add(c *gin.Context) {
	var input domain.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	project, err := h.projectUC.Add(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// Remove godoc
// @Summary      Delete a portfolio project
// @Tags         me
// @Param        id  path  int  true  "Project ID"
// @Success      204
// @Failure      404  {object}  response.Response
// @Router       /talents/me/projects/{id}/ [delete]
// @Security     BearerAuth
func (h *ProjectHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.NotFound("Project not found"))
		return
	}

	if err := h.projectUC.Remove(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
