package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/khoahotran/portfolio-api/internal/domain/about"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type AboutRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger
	aboutRepo   about.Repository
	userRepo    user.Repository
}

func (s *AboutRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	s.testLogger = logger.NewNopLogger()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.aboutRepo = NewPostgresAboutRepo(s.dbPool, s.testLogger)
	s.userRepo = NewPostgresUserRepo(s.dbPool, s.testLogger)
}

func (s *AboutRepoIntegrationTestSuite) SetupTest() {
	_, err := s.dbPool.Exec(context.Background(), `TRUNCATE about, users`)
	s.Require().NoError(err)
}

func (s *AboutRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestAboutRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(AboutRepoIntegrationTestSuite))
}

func (s *AboutRepoIntegrationTestSuite) Test_Get_NotFound() {
	_, err := s.aboutRepo.Get(context.Background())
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *AboutRepoIntegrationTestSuite) Test_Upsert_CreatesThenMerges() {
	ctx := context.Background()

	created, err := s.aboutRepo.Upsert(ctx, about.Patch{
		Name:   about.Some("Ada"),
		Skills: about.Some([]string{"Go", "SQL"}),
	})
	s.Require().NoError(err)
	s.Equal("Ada", created.Name)
	s.Equal([]string{"Go", "SQL"}, created.Skills)
	s.Empty(created.ResumeLink)

	updated, err := s.aboutRepo.Upsert(ctx, about.Patch{Bio: about.Some("Engineer")})
	s.Require().NoError(err)
	s.Equal("Ada", updated.Name)
	s.Equal("Engineer", updated.Bio)
	s.Equal([]string{"Go", "SQL"}, updated.Skills)
	s.False(updated.UpdatedAt.Before(created.UpdatedAt))

	var rows int
	s.Require().NoError(s.dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM about`).Scan(&rows))
	s.Equal(1, rows)
}

func (s *AboutRepoIntegrationTestSuite) Test_Upsert_ResumeFieldsAreAtomic() {
	ctx := context.Background()

	_, err := s.aboutRepo.Upsert(ctx, about.Patch{
		ResumeLink:     about.Some("https://cdn.example/r1.pdf"),
		ResumeFileName: about.Some("cv.pdf"),
		ResumePublicID: about.Some("portfolio/resumes/r1"),
	})
	s.Require().NoError(err)

	got, err := s.aboutRepo.Get(ctx)
	s.Require().NoError(err)
	s.Equal("https://cdn.example/r1.pdf", got.ResumeLink)
	s.Equal("cv.pdf", got.ResumeFileName)
	s.Equal("portfolio/resumes/r1", got.ResumePublicID)
}

func (s *AboutRepoIntegrationTestSuite) Test_User_FindByEmail() {
	ctx := context.Background()
	id := uuid.New()

	_, err := s.dbPool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role) VALUES ($1, $2, $3, $4)`,
		id, "owner@example.com", "hashedpassword", "admin")
	s.Require().NoError(err)

	u, err := s.userRepo.FindByEmail(ctx, "owner@example.com")
	s.Require().NoError(err)
	s.Equal(id, u.ID)
	s.Equal("admin", u.Role)

	_, err = s.userRepo.FindByEmail(ctx, "nobody@example.com")
	s.ErrorIs(err, apperror.ErrNotFound)
}
