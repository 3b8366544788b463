package config

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"DROPSHIP_APP_NAME":                               os.Getenv("DROPSHIP_APP_NAME"),
		"DROPSHIP_APP_ENV":                                os.Getenv("DROPSHIP_APP_ENV"),
		"DROPSHIP_APP_PORT":                               os.Getenv("DROPSHIP_APP_PORT"),
		"DROPSHIP_DATABASE_HOST":                          os.Getenv("DROPSHIP_DATABASE_HOST"),
		"DROPSHIP_DATABASE_PASSWORD":                      os.Getenv("DROPSHIP_DATABASE_PASSWORD"),
		"DROPSHIP_DATABASE_SSLMODE":                       os.Getenv("DROPSHIP_DATABASE_SSLMODE"),
		"DROPSHIP_DROPSHIP_SEND_SUPPLIER_EMAIL":           os.Getenv("DROPSHIP_DROPSHIP_SEND_SUPPLIER_EMAIL"),
		"DROPSHIP_DROPSHIP_DEFAULT_COMMISSION_FLAT_RATE":  os.Getenv("DROPSHIP_DROPSHIP_DEFAULT_COMMISSION_FLAT_RATE"),
		"DROPSHIP_DROPSHIP_DEFAULT_COMMISSION_PERCENTAGE": os.Getenv("DROPSHIP_DROPSHIP_DEFAULT_COMMISSION_PERCENTAGE"),
		"DROPSHIP_SMTP_HOST":                              os.Getenv("DROPSHIP_SMTP_HOST"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "dropship-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "dropship", cfg.Database.DBName)
		assert.False(t, cfg.DropShip.SendSupplierEmail)
		assert.True(t, cfg.DropShip.DefaultCommissionFlatRate.IsZero())
		assert.True(t, cfg.DropShip.DefaultCommissionPercentage.IsZero())
	})

	t.Run("loads drop-ship settings from environment", func(t *testing.T) {
		clearEnv()
		os.Setenv("DROPSHIP_DROPSHIP_SEND_SUPPLIER_EMAIL", "true")
		os.Setenv("DROPSHIP_DROPSHIP_DEFAULT_COMMISSION_FLAT_RATE", "0.5")
		os.Setenv("DROPSHIP_DROPSHIP_DEFAULT_COMMISSION_PERCENTAGE", "12.5")

		cfg, err := Load()
		require.NoError(t, err)

		assert.True(t, cfg.DropShip.SendSupplierEmail)
		assert.True(t, cfg.DropShip.DefaultCommissionFlatRate.Equal(decimal.NewFromFloat(0.5)))
		assert.True(t, cfg.DropShip.DefaultCommissionPercentage.Equal(decimal.NewFromFloat(12.5)))
	})

	t.Run("rejects malformed commission default", func(t *testing.T) {
		clearEnv()
		os.Setenv("DROPSHIP_DROPSHIP_DEFAULT_COMMISSION_FLAT_RATE", "not-a-number")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects negative commission default", func(t *testing.T) {
		clearEnv()
		os.Setenv("DROPSHIP_DROPSHIP_DEFAULT_COMMISSION_PERCENTAGE", "-5")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	envVars := []string{
		"DROPSHIP_APP_ENV",
		"DROPSHIP_DATABASE_PASSWORD",
		"DROPSHIP_DATABASE_SSLMODE",
		"DROPSHIP_DROPSHIP_SEND_SUPPLIER_EMAIL",
		"DROPSHIP_SMTP_HOST",
	}
	original := map[string]string{}
	for _, k := range envVars {
		original[k] = os.Getenv(k)
	}
	defer func() {
		for k, v := range original {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()
	clearEnv := func() {
		for _, k := range envVars {
			os.Unsetenv(k)
		}
	}

	t.Run("requires database password in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("DROPSHIP_APP_ENV", "production")
		os.Setenv("DROPSHIP_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password")
	})

	t.Run("requires smtp host when welcome emails enabled", func(t *testing.T) {
		clearEnv()
		os.Setenv("DROPSHIP_APP_ENV", "production")
		os.Setenv("DROPSHIP_DATABASE_PASSWORD", "secret")
		os.Setenv("DROPSHIP_DATABASE_SSLMODE", "require")
		os.Setenv("DROPSHIP_DROPSHIP_SEND_SUPPLIER_EMAIL", "true")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "smtp.host")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.example.com",
		Port:     5432,
		User:     "app",
		Password: "p@ss/word",
		DBName:   "dropship",
		SSLMode:  "require",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.example.com:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// Special characters must be escaped
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestDropShipSettings(t *testing.T) {
	settings := NewDropShipSettings(DropShipConfig{
		SendSupplierEmail:           true,
		DefaultCommissionFlatRate:   decimal.NewFromFloat(1.25),
		DefaultCommissionPercentage: decimal.NewFromInt(10),
	})

	assert.True(t, settings.SendSupplierEmail())
	assert.True(t, settings.DefaultCommissionFlatRate().Equal(decimal.NewFromFloat(1.25)))
	assert.True(t, settings.DefaultCommissionPercentage().Equal(decimal.NewFromInt(10)))
}
