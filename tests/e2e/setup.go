//go:build e2e

// Package e2e boots the full fx graph against real Postgres and Redis
// containers. Containers are shared per test process; each suite gets its
// own database.
package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"floorplan-service/cmd/bootstrap"
	"floorplan-service/cmd/bootstrap/components"
	"floorplan-service/internal/domain/user"
	"floorplan-service/internal/infra/db"
	"floorplan-service/internal/pkg/config"
	"floorplan-service/tests/common/authtest"
	"floorplan-service/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
)

type stack struct {
	pgHost    string
	pgPort    string
	redisAddr string
}

func (s stack) adminDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, s.pgHost, s.pgPort)
}

var sharedStack = sync.OnceValues(func() (stack, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: postgresRequest(),
		Started:          true,
	})
	if err != nil {
		return stack{}, fmt.Errorf("start postgres: %w", err)
	}
	host, err := pg.Host(ctx)
	if err != nil {
		return stack{}, err
	}
	port, err := pg.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return stack{}, err
	}

	rd, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	if err != nil {
		return stack{}, fmt.Errorf("start redis: %w", err)
	}
	redisAddr, err := rd.Endpoint(ctx, "")
	if err != nil {
		return stack{}, err
	}

	// containers are reaped by ryuk when the test binary exits
	return stack{pgHost: host, pgPort: port.Port(), redisAddr: redisAddr}, nil
})

func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "max_connections=200",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
		Labels: map[string]string{"purpose": "floorplan-e2e"},
	}
}

// createDatabase makes a fresh migrated database and drops it when t ends.
func createDatabase(t *testing.T, env stack) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()
	name := "floorplans_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, env.adminDSN())
	require.NoError(t, err, "admin connection")
	defer admin.Close()

	// CREATE DATABASE can race with template1 use by a parallel package
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("create database failed, retrying", "database", name, "attempt", attempt, "error", err)
		time.Sleep(time.Duration(attempt) * 300 * time.Millisecond)
	}
	require.NoError(t, err, "create database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, env.adminDSN())
		if err != nil {
			return
		}
		defer admin.Close()
		_, _ = admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)")
	})

	dbCfg := config.DBConfig{
		Host:     env.pgHost,
		Port:     env.pgPort,
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 8,
	}
	pool, closePool, err := db.Connect(ctx, dbCfg)
	require.NoError(t, err, "connect")
	t.Cleanup(closePool)
	require.NoError(t, db.Migrate(pool), "migrate")

	return pool, dbCfg
}

func testConfig(env stack, dbCfg config.DBConfig) config.Config {
	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	cfg.Store.Driver = "postgres"
	cfg.Redis = config.RedisConfig{
		Enabled:  true,
		Addr:     env.redisAddr,
		LockTTL:  5 * time.Second,
		LockWait: 2 * time.Second,
	}
	cfg.Metrics = config.MetricsConfig{Enabled: true, Path: "/metrics"}
	return cfg
}

// startApp wires the production modules around the test pool and config.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()
	var router *gin.Engine

	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(gin.New),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			t.Logf("stop fx app: %v", err)
		}
	})
	return router
}

// SharedSuite gives each embedding suite a router backed by its own database.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	env, err := sharedStack()
	require.NoError(t, err, "start containers")

	pool, dbCfg := createDatabase(t, env)
	s.DB = pool
	s.Config = testConfig(env, dbCfg)
	s.Router = startApp(t, pool, s.Config)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}

// Token issues a bearer token signed with the app's secret.
func (s *SharedSuite) Token(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, userID, role)
}
