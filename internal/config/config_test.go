// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "hunter2",
		Database: "productshop",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres dbname=productshop sslmode=disable password=hunter2",
		cfg.DSN())
}

func TestDSNOmitsEmptyPassword(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Database: "productshop",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.NotContains(t, dsn, "password")
	assert.Contains(t, dsn, "dbname=productshop")
}

func TestValidateRejectsNonPositiveRotationInterval(t *testing.T) {
	cfg := Config{
		Environment: "development",
		JWT:         JWTConfig{SecretKey: "test-secret"},
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rotation interval")
}
