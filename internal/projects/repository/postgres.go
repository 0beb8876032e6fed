package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Arun225295196/SIT725/internal/projects/domain"
)

const projectColumns = `id, title, description, category, image, link, created_at`

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the id sequence and the projects table. seed only
// applies the first time the sequence is created.
func (r *PostgresStore) EnsureSchema(ctx context.Context, seed int64) error {
	// DDL cannot take bind parameters; seed is an int64 so formatting is safe.
	stmts := []string{
		fmt.Sprintf(`create sequence if not exists projects_id_seq start with %d minvalue 1;`, seed),
		`
create table if not exists projects (
  id          bigint primary key default nextval('projects_id_seq'),
  title       text not null,
  description text not null,
  category    text not null default 'Uncategorized',
  image       text not null default '',
  link        text not null default '',
  created_at  timestamptz not null default now()
);`,
		`create index if not exists projects_category_lower_idx on projects (lower(category));`,
	}
	for _, q := range stmts {
		if _, err := r.db.Exec(ctx, q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (r *PostgresStore) List(ctx context.Context) ([]domain.Project, error) {
	const q = `select ` + projectColumns + ` from projects order by id asc;`
	return r.query(ctx, q)
}

func (r *PostgresStore) Get(ctx context.Context, id int64) (*domain.Project, error) {
	const q = `select ` + projectColumns + ` from projects where id = $1;`
	p, err := scanProject(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PostgresStore) Create(ctx context.Context, in domain.CreateInput) (*domain.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in = in.Normalize()

	const q = `
insert into projects (title, description, category, image, link)
values ($1, $2, $3, $4, $5)
returning ` + projectColumns + `;
`
	return scanProject(r.db.QueryRow(ctx, q, in.Title, in.Description, in.Category, in.Image, in.Link))
}

func (r *PostgresStore) Update(ctx context.Context, id int64, in domain.UpdateInput) (*domain.Project, error) {
	const q = `
update projects
set title       = coalesce($2, title),
    description = coalesce($3, description),
    category    = coalesce($4, category),
    image       = coalesce($5, image),
    link        = coalesce($6, link)
where id = $1
returning ` + projectColumns + `;
`
	p, err := scanProject(r.db.QueryRow(ctx, q, id, in.Title, in.Description, in.Category, in.Image, in.Link))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PostgresStore) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `delete from projects where id = $1;`, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

func (r *PostgresStore) ListByCategory(ctx context.Context, category string) ([]domain.Project, error) {
	const q = `select ` + projectColumns + ` from projects where lower(category) = lower($1) order by id asc;`
	return r.query(ctx, q, category)
}

func (r *PostgresStore) Reset(ctx context.Context, samples []domain.CreateInput) error {
	for _, in := range samples {
		if err := in.Validate(); err != nil {
			return err
		}
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// delete, not truncate ... restart identity: the sequence must keep counting.
	if _, err := tx.Exec(ctx, `delete from projects;`); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, in := range samples {
		in = in.Normalize()
		batch.Queue(`insert into projects (title, description, category, image, link) values ($1, $2, $3, $4, $5);`,
			in.Title, in.Description, in.Category, in.Image, in.Link)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresStore) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *PostgresStore) query(ctx context.Context, q string, args ...any) ([]domain.Project, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Image, &p.Link, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.CreatedAt = p.CreatedAt.UTC()
	return &p, nil
}

var _ Store = (*PostgresStore)(nil)
