package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	applog "github.com/janisto/diet-planner/internal/platform/logging"
)

// SQL drivers accepted by OpenSQL.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// stateRecord is one row of app_states.
type stateRecord struct {
	Key       string `gorm:"primaryKey;size:191"`
	Payload   string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (stateRecord) TableName() string {
	return "app_states"
}

// OpenSQL opens a gorm connection for driver. Query logging goes through the
// application logger and is only verbose when debug is set.
func OpenSQL(driver, dsn string, debug bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	logLevel := logger.Silent
	if debug {
		logLevel = logger.Info
	}
	gormLogger := logger.New(
		zap.NewStdLog(applog.Logger()),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// SQLGateway stores the state as a JSON payload in one app_states row.
type SQLGateway struct {
	db  *gorm.DB
	key string
}

// NewSQLGateway migrates the app_states table and returns a gateway for the
// row identified by key.
func NewSQLGateway(db *gorm.DB, key string) (*SQLGateway, error) {
	if err := db.AutoMigrate(&stateRecord{}); err != nil {
		return nil, fmt.Errorf("migrate app_states: %w", err)
	}
	return &SQLGateway{db: db, key: key}, nil
}

// Load reads the state row.
func (g *SQLGateway) Load(ctx context.Context) (State, error) {
	var rec stateRecord
	err := g.db.WithContext(ctx).Where("key = ?", g.key).Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmptyState(), nil
		}
		return State{}, fmt.Errorf("load state row: %w", err)
	}
	if rec.Payload == "" {
		return EmptyState(), nil
	}
	return UnmarshalJSON([]byte(rec.Payload))
}

// Save upserts the state row.
func (g *SQLGateway) Save(ctx context.Context, s State) error {
	data, err := MarshalJSON(s)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	rec := stateRecord{Key: g.key, Payload: string(data), UpdatedAt: time.Now().UTC()}
	err = g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save state row: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (g *SQLGateway) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ Gateway = (*SQLGateway)(nil)
