package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/about"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// aboutSingletonID is the only key the about table accepts (CHECK id = 1).
const aboutSingletonID = 1

var psqlAbout = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var aboutColumns = []string{
	"name", "role", "bio", "skills",
	"resume_link", "resume_file_name", "resume_public_id",
	"email", "phone", "location", "linkedin", "github",
	"created_at", "updated_at",
}

type postgresAboutRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresAboutRepo(db *pgxpool.Pool, logger logger.Logger) about.Repository {
	return &postgresAboutRepo{db: db, logger: logger}
}

func scanAbout(row pgx.Row) (*about.About, error) {
	a := &about.About{}
	err := row.Scan(
		&a.Name, &a.Role, &a.Bio, &a.Skills,
		&a.ResumeLink, &a.ResumeFileName, &a.ResumePublicID,
		&a.Email, &a.Phone, &a.Location, &a.LinkedIn, &a.GitHub,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewAppError(apperror.ErrNotFound, "About information not found", "about was not found", about.ErrAboutNotFound)
		}
		return nil, apperror.NewInternal("failed to scan about row", err)
	}
	if a.Skills == nil {
		a.Skills = []string{}
	}
	return a, nil
}

func (r *postgresAboutRepo) Get(ctx context.Context) (*about.About, error) {
	sql, args, err := psqlAbout.Select(aboutColumns...).
		From("about").
		Where(sq.Eq{"id": aboutSingletonID}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build get about query", err)
	}
	return scanAbout(r.db.QueryRow(ctx, sql, args...))
}

// Upsert writes only the columns set in the patch, in a single statement.
func (r *postgresAboutRepo) Upsert(ctx context.Context, p about.Patch) (*about.About, error) {
	sql, args, err := buildAboutUpsert(p)
	if err != nil {
		return nil, apperror.NewInternal("failed to build upsert about query", err)
	}
	return scanAbout(r.db.QueryRow(ctx, sql, args...))
}

func buildAboutUpsert(p about.Patch) (string, []any, error) {
	cols, vals := patchColumns(p)

	set := make([]string, 0, len(cols)+1)
	for _, c := range cols {
		set = append(set, fmt.Sprintf("%s = EXCLUDED.%s", c, c))
	}
	set = append(set, "updated_at = NOW()")

	return psqlAbout.Insert("about").
		Columns(append([]string{"id"}, cols...)...).
		Values(append([]any{aboutSingletonID}, vals...)...).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + strings.Join(set, ", ") +
			" RETURNING " + strings.Join(aboutColumns, ", ")).
		ToSql()
}

func patchColumns(p about.Patch) ([]string, []any) {
	var cols []string
	var vals []any
	addString := func(col string, o about.Optional[string]) {
		if o.IsSet() {
			cols = append(cols, col)
			vals = append(vals, strings.TrimSpace(o.Value()))
		}
	}

	addString("name", p.Name)
	addString("role", p.Role)
	if p.Bio.IsSet() {
		cols = append(cols, "bio")
		vals = append(vals, p.Bio.Value())
	}
	if p.Skills.IsSet() {
		skills := p.Skills.Value()
		if skills == nil {
			skills = []string{}
		}
		cols = append(cols, "skills")
		vals = append(vals, skills)
	}
	addString("resume_link", p.ResumeLink)
	addString("resume_file_name", p.ResumeFileName)
	addString("resume_public_id", p.ResumePublicID)
	addString("email", p.Email)
	addString("phone", p.Phone)
	addString("location", p.Location)
	addString("linkedin", p.LinkedIn)
	addString("github", p.GitHub)
	return cols, vals
}
