// File: internal/store/user.go
package store

import (
	"context"
	"fmt"

	"project-board/internal/database"
	"project-board/internal/model"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, phone, cpf, birth_date, password_hash, first_access, active, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&u.CPF,
		&u.BirthDate,
		&u.PasswordHash,
		&u.FirstAccess,
		&u.Active,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID string) (*model.User, error) {
	u, err := scanUser(db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	))
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByCPF(ctx context.Context, db database.DB, cpf string) (*model.User, error) {
	u, err := scanUser(db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE cpf = $1`,
		cpf,
	))
	if err != nil {
		return nil, fmt.Errorf("GetUserByCPF: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	u, err := scanUser(db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	))
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// ListUsers returns every active user, oldest first.
func ListUsers(ctx context.Context, db database.DB) ([]*model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE active ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) error {
	_, err := db.Exec(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		u.ID,
		u.Name,
		u.Email,
		u.Phone,
		u.CPF,
		u.BirthDate,
		u.PasswordHash,
		u.FirstAccess,
		u.Active,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("CreateUser: %w", err)
	}
	return nil
}

func UpdateUser(ctx context.Context, db database.DB, u *model.User) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET name = $1, email = $2, phone = $3, updated_at = $4
		 WHERE id = $5`,
		u.Name,
		u.Email,
		u.Phone,
		u.UpdatedAt,
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUser: %w", err)
	}
	return nil
}

// UpdateUserPassword persists the digest and first-access flag carried by u.
func UpdateUserPassword(ctx context.Context, db database.DB, u *model.User) error {
	_, err := db.Exec(ctx,
		`UPDATE users
		 SET password_hash = $1, first_access = $2, updated_at = $3
		 WHERE id = $4`,
		u.PasswordHash,
		u.FirstAccess,
		u.UpdatedAt,
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserPassword: %w", err)
	}
	return nil
}

// DeactivateUser persists the soft-delete flag carried by u.
func DeactivateUser(ctx context.Context, db database.DB, u *model.User) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET active = $1, updated_at = $2 WHERE id = $3`,
		u.Active,
		u.UpdatedAt,
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("DeactivateUser: %w", err)
	}
	return nil
}

// UserEmailTaken reports whether another user already holds the email.
// excludeID may be empty on create.
func UserEmailTaken(ctx context.Context, db database.DB, email, excludeID string) (bool, error) {
	var taken bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`,
		email,
		excludeID,
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("UserEmailTaken: %w", err)
	}
	return taken, nil
}

// UserCPFTaken reports whether any user already holds the CPF.
func UserCPFTaken(ctx context.Context, db database.DB, cpf string) (bool, error) {
	var taken bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE cpf = $1)`,
		cpf,
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("UserCPFTaken: %w", err)
	}
	return taken, nil
}
