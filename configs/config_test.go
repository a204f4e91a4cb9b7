package configs_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"github.com/gregj/bartenders-friend/configs"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestGetConfig_GetsNamedFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(250, config.Migration.BatchSize)
}

func (suite *ConfigTestSuite) TestGetConfig_GetsEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("BARTENDERS_DB_HOST", "env.local")
	suite.T().Setenv("BARTENDERS_DB_PORT", "4321")
	suite.T().Setenv("BARTENDERS_DB_USER", "envuser")
	suite.T().Setenv("BARTENDERS_DB_PASSWORD", "env123")
	suite.T().Setenv("BARTENDERS_DB_DATABASE", "envdb")
	suite.T().Setenv("BARTENDERS_DB_MAXIDLECONNECTIONS", "3")
	suite.T().Setenv("BARTENDERS_DB_MAXOPENCONNECTIONS", "4")
	suite.T().Setenv("BARTENDERS_MIGRATION_BATCHSIZE", "25")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal("env.local", config.DB.Host)
	suite.Equal(4321, config.DB.Port)
	suite.Equal("envuser", config.DB.User)
	suite.Equal("env123", config.DB.Password)
	suite.Equal("envdb", config.DB.Database)
	suite.Equal(3, config.DB.MaxIdleConnections)
	suite.Equal(4, config.DB.MaxOpenConnections)
	suite.Equal(25, config.Migration.BatchSize)
}

func (suite *ConfigTestSuite) TestGetConfig_AppliesDefaults() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("BARTENDERS_DB_HOST", "env.local")
	suite.T().Setenv("BARTENDERS_DB_PASSWORD", "env123")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal(5432, config.DB.Port)
	suite.Equal("postgres", config.DB.User)
	suite.Equal("bartenders_friend", config.DB.Database)
	suite.Equal(10, config.DB.MaxIdleConnections)
	suite.Equal(10, config.DB.MaxOpenConnections)
	suite.Equal(500, config.Migration.BatchSize)
}
