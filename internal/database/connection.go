package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/Brendon2203/techsolutions/internal/config"
	"github.com/Brendon2203/techsolutions/internal/domain"
	"github.com/Brendon2203/techsolutions/internal/logging"
	"github.com/Brendon2203/techsolutions/internal/metrics"
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
	connMaxIdleTime = 10 * time.Minute
	pingTimeout     = 5 * time.Second

	sqliteBusyTimeout = "_pragma=busy_timeout(5000)"
)

// Store owns the database handle. It is created once at startup and passed
// to the services that need it.
type Store struct {
	db       *gorm.DB
	postgres bool
}

// New opens the database named by cfg with connection pooling
func New(cfg config.DatabaseConfig) (*Store, error) {
	var dialector gorm.Dialector

	if cfg.IsPostgres() {
		logging.Info("connecting to PostgreSQL database", "component", "database")
		dialector = postgres.Open(cfg.GetPostgresDSN())
	} else {
		dbPath := cfg.GetSQLitePath()
		logging.Info("connecting to SQLite database", "component", "database", "path", dbPath)
		sqlDB, err := sql.Open("sqlite", sqliteDSN(dbPath))
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database: %w", err)
		}
		dialector = sqlite.Dialector{
			DriverName: "sqlite",
			DSN:        dbPath,
			Conn:       sqlDB,
		}
	}

	// SQL statements carry submitter contact data, so gorm stays silent.
	// Errors are still returned to the caller.
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Store{db: db, postgres: cfg.IsPostgres()}

	// Configure connection pool (PostgreSQL only)
	if s.postgres {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}

		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxIdleConns)
		sqlDB.SetConnMaxLifetime(connMaxLifetime)
		sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

		logging.Info("connection pool configured", "component", "database",
			"max_open", maxOpenConns, "max_idle", maxIdleConns)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := s.HealthCheck(ctx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("database connection test failed: %w", err)
	}

	return s, nil
}

func sqliteDSN(path string) string {
	if path == ":memory:" || strings.Contains(path, "_pragma=") {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&" + sqliteBusyTimeout
	}
	return path + "?" + sqliteBusyTimeout
}

// Initialize creates or updates the schema. Safe to call more than once.
func (s *Store) Initialize(ctx context.Context) error {
	logging.Info("running database migrations", "component", "database")
	if err := s.db.WithContext(ctx).AutoMigrate(&domain.QuoteRequest{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// HealthCheck pings the database and refreshes the pool gauges
func (s *Store) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	stats := sqlDB.Stats()
	metrics.UpdateDBConnections(stats.InUse, stats.Idle)
	return nil
}

// Stats returns database connection statistics
func (s *Store) Stats() (sql.DBStats, error) {
	sqlDB, err := s.db.DB()
	if err != nil {
		return sql.DBStats{}, err
	}
	return sqlDB.Stats(), nil
}

// DB exposes the gorm handle for maintenance tooling and tests.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close releases the connection pool
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
