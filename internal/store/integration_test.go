//go:build integration

package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/climate-scenarios/internal/config"
	"github.com/MKhiriev/climate-scenarios/internal/logger"
	"github.com/MKhiriev/climate-scenarios/models"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresSuite runs migrations and repositories against a real postgres:15
// container. Run with: go test -tags integration ./internal/store/...
type PostgresSuite struct {
	suite.Suite

	container testcontainers.Container
	db        *DB
	repos     *Repositories
}

func TestPostgresSuite(t *testing.T) {
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	s.Require().NoError(err)
	s.container = c

	host, err := c.Host(ctx)
	s.Require().NoError(err)
	port, err := c.MappedPort(ctx, "5432")
	s.Require().NoError(err)

	cfg := config.DB{
		DSN:               fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port()),
		MaxConns:          4,
		ConnectRetries:    10,
		ConnectRetryDelay: time.Second,
	}

	l := logger.Nop()
	s.db, err = NewConnectPostgres(ctx, cfg, l)
	s.Require().NoError(err)
	s.Require().NoError(s.db.Migrate())

	s.repos = NewRepositories(s.db, l)
	s.seed(ctx)
}

func (s *PostgresSuite) TearDownSuite() {
	if s.db != nil {
		_ = s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *PostgresSuite) seed(ctx context.Context) {
	statements := []string{
		`INSERT INTO pbtar.publishers (id, name, description) VALUES (1, 'IEA', 'International Energy Agency'), (2, 'NGFS', NULL)`,
		`INSERT INTO pbtar.regions (id, name, parent_id) VALUES (1, 'Europe', NULL), (2, 'Germany', 1)`,
		`INSERT INTO pbtar.stakeholders (id, name, type) VALUES (1, 'Investors', 'Financial')`,
		`INSERT INTO pbtar.sectors (id, name) VALUES (1, 'Power'), (2, 'Transport')`,
		`INSERT INTO pbtar.scenarios (id, title, type, temperature_target, publisher_id, published_date, target_year) VALUES
			(1, 'Net Zero 2050', 'Normative', '1.5°C', 1, '2023-10-01', 2050),
			(2, 'Current Policies', 'Exploratory', '3°C', 2, '2022-05-01', 2100),
			(42, 'Orphan', 'Exploratory', NULL, NULL, NULL, NULL)`,
		`INSERT INTO pbtar.scenario_regions (scenario_id, region_id) VALUES (1, 1), (1, 2), (2, 1)`,
		`INSERT INTO pbtar.scenario_stakeholders (scenario_id, stakeholder_id) VALUES (1, 1)`,
		`INSERT INTO pbtar.scenario_sectors (scenario_id, sector_id) VALUES (1, 1), (2, 2)`,
	}
	for _, stmt := range statements {
		_, err := s.db.ExecContext(ctx, stmt)
		s.Require().NoError(err, stmt)
	}
}

func (s *PostgresSuite) TestMigrateIsIdempotent() {
	s.Require().NoError(s.db.Migrate())
}

func (s *PostgresSuite) TestListScenarios_Filters() {
	ctx := context.Background()

	all, err := s.repos.ScenarioRepository.ListScenarios(ctx, models.ScenarioFilters{})
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("Net Zero 2050", all[0].Title)

	region := int64(2)
	byRegion, err := s.repos.ScenarioRepository.ListScenarios(ctx, models.ScenarioFilters{RegionID: &region})
	s.Require().NoError(err)
	s.Require().Len(byRegion, 1)
	s.Equal(int64(1), byRegion[0].ID)
	s.Equal("IEA", *byRegion[0].Publisher)

	from, typ := int32(2060), "Exploratory"
	late, err := s.repos.ScenarioRepository.ListScenarios(ctx, models.ScenarioFilters{YearFrom: &from, TypeName: &typ})
	s.Require().NoError(err)
	s.Require().Len(late, 1)
	s.Equal(int64(2), late[0].ID)
}

func (s *PostgresSuite) TestGetScenario_Detail() {
	ctx := context.Background()

	sc, pub, err := s.repos.ScenarioRepository.GetScenario(ctx, 1)
	s.Require().NoError(err)
	s.Require().NotNil(pub)
	s.Equal("IEA", pub.Name)
	s.Equal(models.NewDate(2023, time.October, 1), *sc.PublishedDate)

	regions, err := s.repos.ScenarioRepository.ListScenarioRegions(ctx, 1)
	s.Require().NoError(err)
	s.Len(regions, 2)

	_, pub, err = s.repos.ScenarioRepository.GetScenario(ctx, 42)
	s.Require().NoError(err)
	s.Nil(pub)

	_, _, err = s.repos.ScenarioRepository.GetScenario(ctx, 999)
	s.ErrorIs(err, ErrScenarioNotFound)
}

func (s *PostgresSuite) TestReferenceLists() {
	ctx := context.Background()

	types, err := s.repos.ReferenceRepository.ListScenarioTypes(ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Exploratory", "Normative"}, types)

	targets, err := s.repos.ReferenceRepository.ListTemperatureTargets(ctx)
	s.Require().NoError(err)
	s.Equal([]string{"1.5°C", "3°C"}, targets)

	publishers, err := s.repos.ReferenceRepository.ListPublishers(ctx)
	s.Require().NoError(err)
	s.Equal("IEA", publishers[0].Name)
}

func (s *PostgresSuite) TestUsers_UniqueConstraints() {
	ctx := context.Background()
	users := s.repos.UserRepository

	created, err := users.CreateUser(ctx, models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "h"})
	s.Require().NoError(err)
	s.NotZero(created.ID)

	_, err = users.CreateUser(ctx, models.User{Username: "alice", Email: "other@example.com", PasswordHash: "h"})
	s.ErrorIs(err, ErrUserAlreadyExists)

	_, err = users.CreateUser(ctx, models.User{Username: "other", Email: "alice@example.com", PasswordHash: "h"})
	s.ErrorIs(err, ErrUserAlreadyExists)

	exists, err := users.ExistsByUsernameOrEmail(ctx, "nobody", "alice@example.com")
	s.Require().NoError(err)
	s.True(exists)

	found, err := users.FindUserByUsername(ctx, "alice")
	s.Require().NoError(err)
	s.Equal(created.ID, found.ID)

	_, err = users.FindUserByUsername(ctx, "Alice")
	s.ErrorIs(err, ErrNoUserWasFound)
}
