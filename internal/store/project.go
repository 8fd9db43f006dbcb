// File: internal/store/project.go
package store

import (
	"context"
	"fmt"

	"project-board/internal/database"
	"project-board/internal/model"

	"github.com/jackc/pgx/v5"
)

const projectColumns = `id, name, description, status, start_date, end_date, user_id, active, created_at, updated_at`

func scanProject(row pgx.Row) (*model.Project, error) {
	p := &model.Project{}
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Status,
		&p.StartDate,
		&p.EndDate,
		&p.UserID,
		&p.Active,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func GetProjectByID(ctx context.Context, db database.DB, projectID string) (*model.Project, error) {
	p, err := scanProject(db.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`,
		projectID,
	))
	if err != nil {
		return nil, fmt.Errorf("GetProjectByID: %w", err)
	}
	return p, nil
}

// ListProjects returns every active project, oldest first.
func ListProjects(ctx context.Context, db database.DB) ([]*model.Project, error) {
	rows, err := db.Query(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE active ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProjects: %w", err)
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("ListProjects: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProjects: %w", err)
	}
	return projects, nil
}

func CreateProject(ctx context.Context, db database.DB, p *model.Project) error {
	_, err := db.Exec(ctx,
		`INSERT INTO projects (`+projectColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID,
		p.Name,
		p.Description,
		p.Status,
		p.StartDate,
		p.EndDate,
		p.UserID,
		p.Active,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("CreateProject: %w", err)
	}
	return nil
}

func UpdateProject(ctx context.Context, db database.DB, p *model.Project) error {
	_, err := db.Exec(ctx,
		`UPDATE projects
		 SET name = $1, description = $2, start_date = $3, end_date = $4, updated_at = $5
		 WHERE id = $6`,
		p.Name,
		p.Description,
		p.StartDate,
		p.EndDate,
		p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateProject: %w", err)
	}
	return nil
}

// UpdateProjectStatus persists the status carried by p.
func UpdateProjectStatus(ctx context.Context, db database.DB, p *model.Project) error {
	_, err := db.Exec(ctx,
		`UPDATE projects SET status = $1, updated_at = $2 WHERE id = $3`,
		p.Status,
		p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateProjectStatus: %w", err)
	}
	return nil
}

// DeactivateProject persists the soft-delete flag carried by p.
func DeactivateProject(ctx context.Context, db database.DB, p *model.Project) error {
	_, err := db.Exec(ctx,
		`UPDATE projects SET active = $1, updated_at = $2 WHERE id = $3`,
		p.Active,
		p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("DeactivateProject: %w", err)
	}
	return nil
}

// ProjectNameTaken reports whether another active project already holds the
// name. excludeID may be empty on create.
func ProjectNameTaken(ctx context.Context, db database.DB, name, excludeID string) (bool, error) {
	var taken bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM projects WHERE name = $1 AND active AND id <> $2)`,
		name,
		excludeID,
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("ProjectNameTaken: %w", err)
	}
	return taken, nil
}
