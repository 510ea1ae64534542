package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/userhub/internal/platform/db"
)

var _ Repository = (*SQLRepository)(nil)

// SQLRepository stores users in a SQL database reached through database/sql.
type SQLRepository struct {
	db     *sql.DB
	txMgr  db.TxManager
	driver string
}

const QueryUserInsert = "INSERT INTO users (name) VALUES (?) RETURNING id, name"

const QueryUserUpdate = "UPDATE users SET name = ? WHERE id = ? RETURNING id, name"

// Save updates the row with u.ID when it exists and inserts a new row otherwise.
func (r *SQLRepository) Save(ctx context.Context, u User) (User, error) {
	exec := db.ExecutorFromContext(ctx, r.db)

	if !u.IsNew() {
		var saved User
		row := exec.QueryRowContext(ctx, r.query(QueryUserUpdate), u.Name, u.ID)
		err := row.Scan(&saved.ID, &saved.Name)
		if err == nil {
			return saved, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return User{}, fmt.Errorf("%w: update user with id %d: %w", ErrPersistence, u.ID, err)
		}
	}

	var saved User
	row := exec.QueryRowContext(ctx, r.query(QueryUserInsert), u.Name)
	if err := row.Scan(&saved.ID, &saved.Name); err != nil {
		return User{}, fmt.Errorf("%w: insert user %q: %w", ErrPersistence, u.Name, err)
	}
	return saved, nil
}

// SaveAll saves every user inside a single transaction.
func (r *SQLRepository) SaveAll(ctx context.Context, users []User) error {
	err := r.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		for _, u := range users {
			if _, err := r.Save(txCtx, u); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrPersistence) {
			return err
		}
		return fmt.Errorf("%w: save %d users: %w", ErrPersistence, len(users), err)
	}
	return nil
}

const QueryUserList = "SELECT id, name FROM users"

func (r *SQLRepository) FindAll(ctx context.Context) ([]User, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	rows, err := exec.QueryContext(ctx, r.query(QueryUserList))
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %w", ErrPersistence, err)
	}
	defer rows.Close()

	//nolint:prealloc //Cannot identify the length of the rows without running another query.
	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, fmt.Errorf("%w: scan user row: %w", ErrPersistence, err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate over user rows: %w", ErrPersistence, err)
	}

	return users, nil
}

func (r *SQLRepository) query(q string) string {
	return db.Rebind(r.driver, q)
}

func NewSQLRepository(conn *sql.DB, driver string) *SQLRepository {
	return &SQLRepository{
		db:     conn,
		txMgr:  db.NewSQLTxManager(conn),
		driver: driver,
	}
}
