package migration_test

import (
	"database/sql"
	"errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"github.com/gregj/bartenders-friend/pkg/migration"
	"github.com/gregj/bartenders-friend/pkg/repository"
)

var errDatabase = errors.New("database error")

type MigrationSuite struct {
	suite.Suite
	DB           *gorm.DB
	mock         sqlmock.Sqlmock
	observedLogs *observer.ObservedLogs
	logger       *zap.Logger
	repo         *repository.Repository
	migrator     *migration.Migrator
}

func (suite *MigrationSuite) SetupTest() {
	var (
		db              *sql.DB
		err             error
		observedZapCore zapcore.Core
	)

	observedZapCore, suite.observedLogs = observer.New(zap.InfoLevel)
	suite.logger = zap.New(observedZapCore)

	db, suite.mock, err = sqlmock.New()
	suite.Require().NoError(err)

	gormLogger := zapgorm2.New(suite.logger)
	gormLogger.SetAsDefault()

	suite.DB, err = gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{Logger: gormLogger})
	suite.NoError(err)

	suite.repo = &repository.Repository{DB: suite.DB, Logger: suite.logger}
	suite.migrator = migration.NewMigrator(suite.repo, suite.logger, 500)
}
