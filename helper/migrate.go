package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"staywise/config"
	"staywise/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

type Action string

const (
	ActionUp      Action = "up"
	ActionDown    Action = "down"
	ActionStepUp  Action = "step-up"
	ActionDrop    Action = "drop"
	ActionVersion Action = "version"
)

var ErrUnknownAction = errors.New("unknown migration action")

// MigrationURL points golang-migrate at the primary, keeping its bookkeeping
// in DB_POSTGRES_MIGRATION_TABLE when one is set.
func MigrationURL(config *config.Config) string {
	dsn := postgres.DSN(config.DB.Postgres.Write, config.DB.Postgres.Prefix)
	if config.DB.Postgres.MigrationTable == "" {
		return dsn
	}

	return dsn + "&x-migrations-table=" + url.QueryEscape(config.DB.Postgres.MigrationTable)
}

func Runner(config *config.Config, action Action) error {
	switch action {
	case ActionUp, ActionDown, ActionStepUp, ActionDrop, ActionVersion:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	mig, err := migrate.New(migrationSource, MigrationURL(config))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	case ActionVersion:
		version, dirty, versionErr := mig.Version()
		if versionErr != nil && !errors.Is(versionErr, migrate.ErrNilVersion) {
			return fmt.Errorf("error reading migration version: %w", versionErr)
		}

		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Database migration version")

		return nil
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	log.Info().Str("action", string(action)).Msg("Database migrations applied")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}
