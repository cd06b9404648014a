package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"famtree/internal/domain"
	"famtree/internal/pkg/log"
	"famtree/internal/repository/migrations"
)

const dateLayout = "2006-01-02"

const (
	sqMemberCols   = `id, first_name, last_name, birth_date, death_date, gender, picture_url, created_at`
	sqMarriageCols = `id, spouse1_id, spouse2_id, marriage_date, divorce_date, created_at`
	sqEdgeCols     = `id, parent_id, child_id, created_at`
)

// SqliteFamilyRepo stores the family in a single SQLite file. Dates are
// kept as YYYY-MM-DD text and creation times as unix milliseconds.
type SqliteFamilyRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewSqliteFamilyRepo(db *sql.DB) *SqliteFamilyRepo {
	return &SqliteFamilyRepo{db: db, now: time.Now}
}

// sqQuerier is satisfied by both *sql.DB and *sql.Tx.
type sqQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SqliteFamilyRepo) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY, applied_at INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}
	files, err := migrations.Files(migrations.SQLite)
	if err != nil {
		return err
	}
	for _, f := range files {
		var n int
		if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations WHERE name=?`, f.Name).Scan(&n); err != nil {
			return fmt.Errorf("check migration %s: %w", f.Name, err)
		}
		if n > 0 {
			continue
		}
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, f.SQL); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration %s: %w", f.Name, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (name, applied_at) VALUES (?, ?)`, f.Name, r.now().UnixMilli()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", f.Name, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		log.Info.Printf("migration applied name=%s", f.Name)
	}
	return nil
}

func dateArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(dateLayout)
}

func dateFrom(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s.String)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", s.String, err)
	}
	return &t, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func scanSqMember(row rowScanner) (*domain.Member, error) {
	var (
		m               domain.Member
		birth, death    sql.NullString
		gender, picture sql.NullString
		createdAt       int64
	)
	if err := row.Scan(&m.ID, &m.FirstName, &m.LastName, &birth, &death, &gender, &picture, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if m.BirthDate, err = dateFrom(birth); err != nil {
		return nil, err
	}
	if m.DeathDate, err = dateFrom(death); err != nil {
		return nil, err
	}
	m.Gender = genderFrom(nullString(gender))
	m.PictureURL = nullString(picture)
	m.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &m, nil
}

func scanSqMarriage(row rowScanner) (*domain.Marriage, error) {
	var (
		m                 domain.Marriage
		married, divorced sql.NullString
		createdAt         int64
	)
	if err := row.Scan(&m.ID, &m.Spouse1ID, &m.Spouse2ID, &married, &divorced, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if m.MarriageDate, err = dateFrom(married); err != nil {
		return nil, err
	}
	if m.DivorceDate, err = dateFrom(divorced); err != nil {
		return nil, err
	}
	m.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &m, nil
}

func scanSqEdge(row rowScanner) (*domain.ParentChild, error) {
	var (
		e         domain.ParentChild
		createdAt int64
	)
	if err := row.Scan(&e.ID, &e.ParentID, &e.ChildID, &createdAt); err != nil {
		return nil, err
	}
	e.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &e, nil
}

func collectSq[T any](rows *sql.Rows, scan func(rowScanner) (*T, error)) ([]T, error) {
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

func sqErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var se *msqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return domain.ErrConflict
		case sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: referenced member does not exist", domain.ErrNotFound)
		case sqlite3lib.SQLITE_CONSTRAINT_CHECK:
			return fmt.Errorf("%w: %s", domain.ErrValidation, strings.TrimSpace(se.Error()))
		}
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint failed"):
		return domain.ErrConflict
	case strings.Contains(msg, "foreign key constraint failed"):
		return fmt.Errorf("%w: referenced member does not exist", domain.ErrNotFound)
	case strings.Contains(msg, "check constraint failed"):
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}
	return err
}

func (r *SqliteFamilyRepo) ListMembers(ctx context.Context) ([]domain.Member, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+sqMemberCols+` FROM family_members ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectSq(rows, scanSqMember)
}

func (r *SqliteFamilyRepo) GetMember(ctx context.Context, id int32) (*domain.Member, error) {
	m, err := scanSqMember(r.db.QueryRowContext(ctx, `SELECT `+sqMemberCols+` FROM family_members WHERE id=?`, id))
	if err != nil {
		return nil, sqErr(err)
	}
	return m, nil
}

func (r *SqliteFamilyRepo) CreateMember(ctx context.Context, m domain.Member) (*domain.Member, error) {
	return r.insertMember(ctx, r.db, m)
}

func (r *SqliteFamilyRepo) insertMember(ctx context.Context, q sqQuerier, m domain.Member) (*domain.Member, error) {
	out, err := scanSqMember(q.QueryRowContext(ctx,
		`INSERT INTO family_members (first_name,last_name,birth_date,death_date,gender,picture_url,created_at)
		 VALUES (?,?,?,?,?,?,?) RETURNING `+sqMemberCols,
		m.FirstName, m.LastName, dateArg(m.BirthDate), dateArg(m.DeathDate), genderArg(m.Gender), m.PictureURL, r.now().UnixMilli()))
	if err != nil {
		return nil, sqErr(err)
	}
	return out, nil
}

func (r *SqliteFamilyRepo) UpdateMember(ctx context.Context, m domain.Member) (*domain.Member, error) {
	out, err := scanSqMember(r.db.QueryRowContext(ctx,
		`UPDATE family_members SET first_name=?,last_name=?,birth_date=?,death_date=?,gender=?,picture_url=?
		 WHERE id=? RETURNING `+sqMemberCols,
		m.FirstName, m.LastName, dateArg(m.BirthDate), dateArg(m.DeathDate), genderArg(m.Gender), m.PictureURL, m.ID))
	if err != nil {
		return nil, sqErr(err)
	}
	return out, nil
}

func (r *SqliteFamilyRepo) ListMarriages(ctx context.Context) ([]domain.Marriage, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+sqMarriageCols+` FROM marriages ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectSq(rows, scanSqMarriage)
}

func (r *SqliteFamilyRepo) GetMarriage(ctx context.Context, id int32) (*domain.Marriage, error) {
	m, err := scanSqMarriage(r.db.QueryRowContext(ctx, `SELECT `+sqMarriageCols+` FROM marriages WHERE id=?`, id))
	if err != nil {
		return nil, sqErr(err)
	}
	return m, nil
}

func (r *SqliteFamilyRepo) CreateMarriage(ctx context.Context, m domain.Marriage) (*domain.Marriage, error) {
	return r.insertMarriage(ctx, r.db, m)
}

func (r *SqliteFamilyRepo) insertMarriage(ctx context.Context, q sqQuerier, m domain.Marriage) (*domain.Marriage, error) {
	out, err := scanSqMarriage(q.QueryRowContext(ctx,
		`INSERT INTO marriages (spouse1_id,spouse2_id,marriage_date,divorce_date,created_at)
		 VALUES (?,?,?,?,?) RETURNING `+sqMarriageCols,
		m.Spouse1ID, m.Spouse2ID, dateArg(m.MarriageDate), dateArg(m.DivorceDate), r.now().UnixMilli()))
	if err != nil {
		return nil, sqErr(err)
	}
	return out, nil
}

func (r *SqliteFamilyRepo) UpdateMarriage(ctx context.Context, m domain.Marriage) (*domain.Marriage, error) {
	out, err := scanSqMarriage(r.db.QueryRowContext(ctx,
		`UPDATE marriages SET marriage_date=?,divorce_date=? WHERE id=? RETURNING `+sqMarriageCols,
		dateArg(m.MarriageDate), dateArg(m.DivorceDate), m.ID))
	if err != nil {
		return nil, sqErr(err)
	}
	return out, nil
}

func (r *SqliteFamilyRepo) DeleteMarriage(ctx context.Context, id int32) error {
	return r.deleteByID(ctx, `DELETE FROM marriages WHERE id=?`, id)
}

func (r *SqliteFamilyRepo) ListParentChild(ctx context.Context) ([]domain.ParentChild, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+sqEdgeCols+` FROM parent_child ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectSq(rows, scanSqEdge)
}

func (r *SqliteFamilyRepo) CreateParentChild(ctx context.Context, pc domain.ParentChild) (*domain.ParentChild, error) {
	return r.insertEdge(ctx, r.db, pc)
}

func (r *SqliteFamilyRepo) insertEdge(ctx context.Context, q sqQuerier, pc domain.ParentChild) (*domain.ParentChild, error) {
	out, err := scanSqEdge(q.QueryRowContext(ctx,
		`INSERT INTO parent_child (parent_id,child_id,created_at) VALUES (?,?,?) RETURNING `+sqEdgeCols,
		pc.ParentID, pc.ChildID, r.now().UnixMilli()))
	if err != nil {
		return nil, sqErr(err)
	}
	return out, nil
}

func (r *SqliteFamilyRepo) DeleteParentChild(ctx context.Context, id int32) error {
	return r.deleteByID(ctx, `DELETE FROM parent_child WHERE id=?`, id)
}

func (r *SqliteFamilyRepo) ImportNetwork(ctx context.Context, n domain.FamilyNetwork) (*domain.FamilyNetwork, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	w := networkWriter{
		member:   func(m domain.Member) (*domain.Member, error) { return r.insertMember(ctx, tx, m) },
		marriage: func(m domain.Marriage) (*domain.Marriage, error) { return r.insertMarriage(ctx, tx, m) },
		edge:     func(e domain.ParentChild) (*domain.ParentChild, error) { return r.insertEdge(ctx, tx, e) },
	}
	out, err := w.write(n)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	log.Info.Printf("network imported members=%d marriages=%d edges=%d", len(out.Members), len(out.Marriages), len(out.ParentChild))
	return out, nil
}

func (r *SqliteFamilyRepo) deleteByID(ctx context.Context, q string, id int32) error {
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
