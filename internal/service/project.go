// File: internal/service/project.go
package service

import (
	"context"
	"time"

	"project-board/internal/api"
	"project-board/internal/database"
	"project-board/internal/model"
	"project-board/internal/store"
)

var (
	getProjectByID      = store.GetProjectByID
	listProjects        = store.ListProjects
	createProject       = store.CreateProject
	updateProject       = store.UpdateProject
	updateProjectStatus = store.UpdateProjectStatus
	deactivateProject   = store.DeactivateProject
	projectNameTaken    = store.ProjectNameTaken
)

// parseProjectDates parses the optional date pair and enforces end >= start
// when both are present. A non-nil *api.Result is the failure to return.
func parseProjectDates(startRaw, endRaw *string) (start, end *time.Time, fail *api.Result) {
	if startRaw != nil {
		t, err := time.Parse("2006-01-02", *startRaw)
		if err != nil {
			return nil, nil, api.Fail("invalid start date")
		}
		start = &t
	}
	if endRaw != nil {
		t, err := time.Parse("2006-01-02", *endRaw)
		if err != nil {
			return nil, nil, api.Fail("invalid end date")
		}
		end = &t
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, api.Fail("end date must not be before start date")
	}
	return start, end, nil
}

// CreateProject requires an existing active owner and a name unused by any
// active project.
func CreateProject(ctx context.Context, db database.DB, req api.CreateProjectRequest) *api.Result {
	start, end, fail := parseProjectDates(req.StartDate, req.EndDate)
	if fail != nil {
		return fail
	}

	owner, err := getUserByID(ctx, db, req.UserID)
	if err != nil {
		return failFrom(err, "owner user not found")
	}
	if !owner.Active {
		return api.Fail("owner user is deactivated")
	}

	taken, err := projectNameTaken(ctx, db, req.Name, "")
	if err != nil {
		return api.Fail(err.Error())
	}
	if taken {
		return api.Fail("project name already in use")
	}

	p := model.NewProject(req.Name, req.Description, req.Status, start, end, owner.ID)
	if err := createProject(ctx, db, p); err != nil {
		return api.Fail(err.Error())
	}
	return api.Ok(api.NewProjectResponse(p))
}

// ListProjects returns every active project.
func ListProjects(ctx context.Context, db database.DB) *api.Result {
	projects, err := listProjects(ctx, db)
	if err != nil {
		return api.Fail(err.Error())
	}
	resp := make([]api.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, api.NewProjectResponse(p))
	}
	return api.Ok(resp)
}

func GetProject(ctx context.Context, db database.DB, projectID string) *api.Result {
	p, err := getProjectByID(ctx, db, projectID)
	if err != nil {
		return failFrom(err, "project not found")
	}
	return api.Ok(api.NewProjectResponse(p))
}

// UpdateProject mutates the project after re-checking the active-name rule
// and the date order.
func UpdateProject(ctx context.Context, db database.DB, projectID string, req api.UpdateProjectRequest) *api.Result {
	p, err := getProjectByID(ctx, db, projectID)
	if err != nil {
		return failFrom(err, "project not found")
	}
	if !p.Active {
		return api.Fail("project is deactivated")
	}

	start, end, fail := parseProjectDates(req.StartDate, req.EndDate)
	if fail != nil {
		return fail
	}

	taken, err := projectNameTaken(ctx, db, req.Name, p.ID)
	if err != nil {
		return api.Fail(err.Error())
	}
	if taken {
		return api.Fail("project name already in use")
	}

	p.Update(req.Name, req.Description, start, end)
	if err := updateProject(ctx, db, p); err != nil {
		return api.Fail(err.Error())
	}
	return api.Ok(api.NewProjectResponse(p))
}

// ChangeProjectStatus moves the project to another status of the fixed set.
func ChangeProjectStatus(ctx context.Context, db database.DB, projectID, status string) *api.Result {
	if !model.ValidStatus(status) {
		return api.Fail("invalid project status")
	}
	p, err := getProjectByID(ctx, db, projectID)
	if err != nil {
		return failFrom(err, "project not found")
	}
	if !p.Active {
		return api.Fail("project is deactivated")
	}
	p.ChangeStatus(status)
	if err := updateProjectStatus(ctx, db, p); err != nil {
		return api.Fail(err.Error())
	}
	return api.Ok(api.NewProjectResponse(p))
}

// DeactivateProject soft-deletes the project; repeating it is an idempotent
// success.
func DeactivateProject(ctx context.Context, db database.DB, projectID string) *api.Result {
	p, err := getProjectByID(ctx, db, projectID)
	if err != nil {
		return failFrom(err, "project not found")
	}
	if !p.Active {
		return api.NoContent()
	}
	p.Deactivate()
	if err := deactivateProject(ctx, db, p); err != nil {
		return api.Fail(err.Error())
	}
	return api.NoContent()
}
