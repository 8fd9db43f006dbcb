// File: internal/handler/projects/project.go
package projects

import (
	"net/http"

	"project-board/internal/api"
	"project-board/internal/database"
	"project-board/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	createProject       = service.CreateProject
	listProjects        = service.ListProjects
	getProject          = service.GetProject
	updateProject       = service.UpdateProject
	changeProjectStatus = service.ChangeProjectStatus
	deactivateProject   = service.DeactivateProject
)

func respond(c echo.Context, r *api.Result) error {
	if r.Success {
		return c.JSON(http.StatusOK, r)
	}
	return c.JSON(http.StatusBadRequest, r)
}

// @Summary     Create a project
// @Description The owner must be an active user and the name unused among active projects
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       request body api.CreateProjectRequest true "new project"
// @Success     200 {object} api.Result{data=api.ProjectResponse}
// @Failure     400 {object} api.Result
// @Router      /projects [post]
func CreateProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateProjectRequest
		if err := c.Bind(&req); err != nil {
			return respond(c, api.Fail("invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return respond(c, api.Fail(err.Error()))
		}
		return respond(c, createProject(c.Request().Context(), db, req))
	}
}

// @Summary     List projects
// @Description Returns every active project
// @Tags        projects
// @Produce     json
// @Success     200 {object} api.Result{data=[]api.ProjectResponse}
// @Failure     400 {object} api.Result
// @Router      /projects [get]
func ListProjectsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		return respond(c, listProjects(c.Request().Context(), db))
	}
}

// @Summary     Get a project by id
// @Tags        projects
// @Produce     json
// @Param       id path string true "project id"
// @Success     200 {object} api.Result{data=api.ProjectResponse}
// @Failure     400 {object} api.Result
// @Router      /projects/{id} [get]
func GetProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		return respond(c, getProject(c.Request().Context(), db, c.Param("id")))
	}
}

// @Summary     Update a project
// @Description Re-checks the active-name rule and the start/end order
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       id path string true "project id"
// @Param       request body api.UpdateProjectRequest true "project fields"
// @Success     200 {object} api.Result{data=api.ProjectResponse}
// @Failure     400 {object} api.Result
// @Router      /projects/{id} [put]
func UpdateProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateProjectRequest
		if err := c.Bind(&req); err != nil {
			return respond(c, api.Fail("invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return respond(c, api.Fail(err.Error()))
		}
		return respond(c, updateProject(c.Request().Context(), db, c.Param("id"), req))
	}
}

// @Summary     Change a project's status
// @Description Moves the project to another status of the fixed set
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       id path string true "project id"
// @Param       request body api.UpdateProjectStatusRequest true "target status"
// @Success     200 {object} api.Result{data=api.ProjectResponse}
// @Failure     400 {object} api.Result
// @Router      /projects/{id}/status [patch]
func UpdateProjectStatusHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateProjectStatusRequest
		if err := c.Bind(&req); err != nil {
			return respond(c, api.Fail("invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return respond(c, api.Fail(err.Error()))
		}
		return respond(c, changeProjectStatus(c.Request().Context(), db, c.Param("id"), req.Status))
	}
}

// @Summary     Deactivate a project
// @Description Soft delete; repeating it succeeds without further changes
// @Tags        projects
// @Produce     json
// @Param       id path string true "project id"
// @Success     200 {object} api.Result
// @Failure     400 {object} api.Result
// @Router      /projects/{id} [delete]
func DeleteProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		return respond(c, deactivateProject(c.Request().Context(), db, c.Param("id")))
	}
}
