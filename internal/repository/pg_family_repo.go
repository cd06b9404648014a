package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"famtree/internal/domain"
	"famtree/internal/pkg/log"
	"famtree/internal/repository/migrations"
)

const (
	pgMemberCols   = `id, first_name, last_name, birth_date, death_date, gender, picture_url, created_at`
	pgMarriageCols = `id, spouse1_id, spouse2_id, marriage_date, divorce_date, created_at`
	pgEdgeCols     = `id, parent_id, child_id, created_at`
)

type PgFamilyRepo struct{ db *pgxpool.Pool }

// pgQuerier is satisfied by both the pool and an open transaction.
type pgQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func NewPgFamilyRepo(db *pgxpool.Pool) *PgFamilyRepo { return &PgFamilyRepo{db: db} }

// Migrate applies the embedded Postgres migrations that have not run yet.
func (r *PgFamilyRepo) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY, applied_at TIMESTAMPTZ NOT NULL DEFAULT now())`); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}
	files, err := migrations.Files(migrations.Postgres)
	if err != nil {
		return err
	}
	for _, f := range files {
		var applied bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name=$1)`, f.Name).Scan(&applied); err != nil {
			return fmt.Errorf("check migration %s: %w", f.Name, err)
		}
		if applied {
			continue
		}
		if err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, f.SQL); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, f.Name)
			return err
		}); err != nil {
			return fmt.Errorf("apply migration %s: %w", f.Name, err)
		}
		log.Info.Printf("migration applied name=%s", f.Name)
	}
	return nil
}

func scanPgMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	var gender *string
	if err := row.Scan(&m.ID, &m.FirstName, &m.LastName, &m.BirthDate, &m.DeathDate, &gender, &m.PictureURL, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.Gender = genderFrom(gender)
	return &m, nil
}

func scanPgMarriage(row pgx.Row) (*domain.Marriage, error) {
	var m domain.Marriage
	if err := row.Scan(&m.ID, &m.Spouse1ID, &m.Spouse2ID, &m.MarriageDate, &m.DivorceDate, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func scanPgEdge(row pgx.Row) (*domain.ParentChild, error) {
	var e domain.ParentChild
	if err := row.Scan(&e.ID, &e.ParentID, &e.ChildID, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func collectPg[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]T, error) {
	defer rows.Close()
	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

// pgErr maps driver errors onto domain errors.
func pgErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		switch pe.Code {
		case "23505":
			return domain.ErrConflict
		case "23503":
			return fmt.Errorf("%w: referenced member does not exist", domain.ErrNotFound)
		case "23514":
			return fmt.Errorf("%w: %s", domain.ErrValidation, pe.ConstraintName)
		}
	}
	return err
}

func (r *PgFamilyRepo) ListMembers(ctx context.Context) ([]domain.Member, error) {
	rows, err := r.db.Query(ctx, `SELECT `+pgMemberCols+` FROM family_members ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectPg(rows, scanPgMember)
}

func (r *PgFamilyRepo) GetMember(ctx context.Context, id int32) (*domain.Member, error) {
	m, err := scanPgMember(r.db.QueryRow(ctx, `SELECT `+pgMemberCols+` FROM family_members WHERE id=$1`, id))
	if err != nil {
		return nil, pgErr(err)
	}
	return m, nil
}

func (r *PgFamilyRepo) CreateMember(ctx context.Context, m domain.Member) (*domain.Member, error) {
	return insertPgMember(ctx, r.db, m)
}

func insertPgMember(ctx context.Context, q pgQuerier, m domain.Member) (*domain.Member, error) {
	out, err := scanPgMember(q.QueryRow(ctx,
		`INSERT INTO family_members (first_name,last_name,birth_date,death_date,gender,picture_url)
		 VALUES ($1,$2,$3,$4,$5,$6) RETURNING `+pgMemberCols,
		m.FirstName, m.LastName, m.BirthDate, m.DeathDate, genderArg(m.Gender), m.PictureURL))
	if err != nil {
		return nil, pgErr(err)
	}
	return out, nil
}

func (r *PgFamilyRepo) UpdateMember(ctx context.Context, m domain.Member) (*domain.Member, error) {
	out, err := scanPgMember(r.db.QueryRow(ctx,
		`UPDATE family_members SET first_name=$1,last_name=$2,birth_date=$3,death_date=$4,gender=$5,picture_url=$6
		 WHERE id=$7 RETURNING `+pgMemberCols,
		m.FirstName, m.LastName, m.BirthDate, m.DeathDate, genderArg(m.Gender), m.PictureURL, m.ID))
	if err != nil {
		return nil, pgErr(err)
	}
	return out, nil
}

func (r *PgFamilyRepo) ListMarriages(ctx context.Context) ([]domain.Marriage, error) {
	rows, err := r.db.Query(ctx, `SELECT `+pgMarriageCols+` FROM marriages ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectPg(rows, scanPgMarriage)
}

func (r *PgFamilyRepo) GetMarriage(ctx context.Context, id int32) (*domain.Marriage, error) {
	m, err := scanPgMarriage(r.db.QueryRow(ctx, `SELECT `+pgMarriageCols+` FROM marriages WHERE id=$1`, id))
	if err != nil {
		return nil, pgErr(err)
	}
	return m, nil
}

func (r *PgFamilyRepo) CreateMarriage(ctx context.Context, m domain.Marriage) (*domain.Marriage, error) {
	return insertPgMarriage(ctx, r.db, m)
}

func insertPgMarriage(ctx context.Context, q pgQuerier, m domain.Marriage) (*domain.Marriage, error) {
	out, err := scanPgMarriage(q.QueryRow(ctx,
		`INSERT INTO marriages (spouse1_id,spouse2_id,marriage_date,divorce_date)
		 VALUES ($1,$2,$3,$4) RETURNING `+pgMarriageCols,
		m.Spouse1ID, m.Spouse2ID, m.MarriageDate, m.DivorceDate))
	if err != nil {
		return nil, pgErr(err)
	}
	return out, nil
}

func (r *PgFamilyRepo) UpdateMarriage(ctx context.Context, m domain.Marriage) (*domain.Marriage, error) {
	out, err := scanPgMarriage(r.db.QueryRow(ctx,
		`UPDATE marriages SET marriage_date=$1,divorce_date=$2 WHERE id=$3 RETURNING `+pgMarriageCols,
		m.MarriageDate, m.DivorceDate, m.ID))
	if err != nil {
		return nil, pgErr(err)
	}
	return out, nil
}

func (r *PgFamilyRepo) DeleteMarriage(ctx context.Context, id int32) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM marriages WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PgFamilyRepo) ListParentChild(ctx context.Context) ([]domain.ParentChild, error) {
	rows, err := r.db.Query(ctx, `SELECT `+pgEdgeCols+` FROM parent_child ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectPg(rows, scanPgEdge)
}

func (r *PgFamilyRepo) CreateParentChild(ctx context.Context, pc domain.ParentChild) (*domain.ParentChild, error) {
	return insertPgEdge(ctx, r.db, pc)
}

func insertPgEdge(ctx context.Context, q pgQuerier, pc domain.ParentChild) (*domain.ParentChild, error) {
	out, err := scanPgEdge(q.QueryRow(ctx,
		`INSERT INTO parent_child (parent_id,child_id) VALUES ($1,$2) RETURNING `+pgEdgeCols,
		pc.ParentID, pc.ChildID))
	if err != nil {
		return nil, pgErr(err)
	}
	return out, nil
}

func (r *PgFamilyRepo) DeleteParentChild(ctx context.Context, id int32) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM parent_child WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PgFamilyRepo) ImportNetwork(ctx context.Context, n domain.FamilyNetwork) (*domain.FamilyNetwork, error) {
	var out *domain.FamilyNetwork
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		w := networkWriter{
			member:   func(m domain.Member) (*domain.Member, error) { return insertPgMember(ctx, tx, m) },
			marriage: func(m domain.Marriage) (*domain.Marriage, error) { return insertPgMarriage(ctx, tx, m) },
			edge:     func(e domain.ParentChild) (*domain.ParentChild, error) { return insertPgEdge(ctx, tx, e) },
		}
		var err error
		out, err = w.write(n)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Info.Printf("network imported members=%d marriages=%d edges=%d", len(out.Members), len(out.Marriages), len(out.ParentChild))
	return out, nil
}
