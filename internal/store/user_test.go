// File: internal/store/user_test.go
package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"project-board/internal/database"
	"project-board/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// fakeUserRow implements pgx.Row for single-row user scans. A one-destination
// scan is an EXISTS probe.
type fakeUserRow struct {
	scanErr error
	user    *model.User
	taken   bool
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	switch len(dest) {
	case 11:
		u := r.user
		*dest[0].(*string) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Email
		*dest[3].(**string) = u.Phone
		*dest[4].(*string) = u.CPF
		*dest[5].(*time.Time) = u.BirthDate
		*dest[6].(*string) = u.PasswordHash
		*dest[7].(*bool) = u.FirstAccess
		*dest[8].(*bool) = u.Active
		*dest[9].(*time.Time) = u.CreatedAt
		*dest[10].(*time.Time) = u.UpdatedAt
	case 1:
		*dest[0].(*bool) = r.taken
	default:
		panic("fakeUserRow.Scan: unexpected number of dest")
	}
	return nil
}

// fakeUserRows implements pgx.Rows over a fixed slice.
type fakeUserRows struct {
	data    []*model.User
	idx     int
	scanErr error
	err     error
}

func (r *fakeUserRows) Close()                                       {}
func (r *fakeUserRows) Err() error                                   { return r.err }
func (r *fakeUserRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeUserRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeUserRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeUserRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.data[r.idx]
	r.idx++
	return (&fakeUserRow{user: u}).Scan(dest...)
}
func (r *fakeUserRows) Values() ([]any, error) { return nil, nil }
func (r *fakeUserRows) RawValues() [][]byte    { return nil }
func (r *fakeUserRows) Conn() *pgx.Conn        { return nil }

func sampleUser() *model.User {
	now := time.Now().UTC().Truncate(time.Second)
	phone := "11987654321"
	return &model.User{
		ID:           "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		Name:         "Alice Souza",
		Email:        "alice@example.com",
		Phone:        &phone,
		CPF:          "52998224725",
		BirthDate:    time.Date(1998, 11, 25, 0, 0, 0, 0, time.UTC),
		PasswordHash: "digest",
		FirstAccess:  true,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserReads(t *testing.T) {
	ctx := context.Background()
	sample := sampleUser()

	t.Run("GetUserByID ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{sample.ID}, args)
				return &fakeUserRow{user: sample}
			},
		}
		got, err := GetUserByID(ctx, db, sample.ID)
		require.NoError(t, err)
		require.Equal(t, sample, got)
	})

	t.Run("GetUserByID no rows", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetUserByID(ctx, db, "missing")
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("GetUserByCPF ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{sample.CPF}, args)
				return &fakeUserRow{user: sample}
			},
		}
		got, err := GetUserByCPF(ctx, db, sample.CPF)
		require.NoError(t, err)
		require.Equal(t, sample.ID, got.ID)
	})

	t.Run("GetUserByEmail err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeUserRow{scanErr: errors.New("scan")}
			},
		}
		_, err := GetUserByEmail(ctx, db, sample.Email)
		require.Error(t, err)
	})
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	sample := sampleUser()

	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeUserRows{data: []*model.User{sample, sample}}, nil
			},
		}
		users, err := ListUsers(ctx, db)
		require.NoError(t, err)
		require.Len(t, users, 2)
	})

	t.Run("query err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return nil, errors.New("query")
			},
		}
		_, err := ListUsers(ctx, db)
		require.Error(t, err)
	})

	t.Run("scan err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeUserRows{data: []*model.User{sample}, scanErr: errors.New("scan")}, nil
			},
		}
		_, err := ListUsers(ctx, db)
		require.Error(t, err)
	})

	t.Run("rows err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeUserRows{err: errors.New("rows")}, nil
			},
		}
		_, err := ListUsers(ctx, db)
		require.Error(t, err)
	})
}

func TestUserWrites(t *testing.T) {
	ctx := context.Background()
	sample := sampleUser()

	t.Run("Create ok", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Len(t, args, 11)
				require.Equal(t, sample.ID, args[0])
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, CreateUser(ctx, db, sample))
	})

	t.Run("Create err", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("exec")
			},
		}
		require.Error(t, CreateUser(ctx, db, sample))
	})

	t.Run("Update ok", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Len(t, args, 5)
				require.Equal(t, sample.ID, args[4])
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, UpdateUser(ctx, db, sample))
	})

	t.Run("UpdatePassword ok", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Len(t, args, 4)
				require.Equal(t, sample.PasswordHash, args[0])
				require.Equal(t, sample.FirstAccess, args[1])
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, UpdateUserPassword(ctx, db, sample))
	})

	t.Run("Deactivate err", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("exec")
			},
		}
		require.Error(t, DeactivateUser(ctx, db, sample))
	})
}

func TestUserProbes(t *testing.T) {
	ctx := context.Background()

	t.Run("EmailTaken true", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{"alice@example.com", "self"}, args)
				return &fakeUserRow{taken: true}
			},
		}
		taken, err := UserEmailTaken(ctx, db, "alice@example.com", "self")
		require.NoError(t, err)
		require.True(t, taken)
	})

	t.Run("EmailTaken err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeUserRow{scanErr: errors.New("scan")}
			},
		}
		_, err := UserEmailTaken(ctx, db, "alice@example.com", "")
		require.Error(t, err)
	})

	t.Run("CPFTaken false", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{"52998224725"}, args)
				return &fakeUserRow{taken: false}
			},
		}
		taken, err := UserCPFTaken(ctx, db, "52998224725")
		require.NoError(t, err)
		require.False(t, taken)
	})
}
