package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"staywise/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

var ErrConnectionExhausted = errors.New("postgres connection retries exhausted")

// Connection holds the read replica and the primary. The catalog only reads,
// migrations go through Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	read, err := CreatePostgresConnection("read", config.DB.Postgres.Read, config)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to read database")
	}

	write, err := CreatePostgresConnection("write", config.DB.Postgres.Write, config)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to write database")
	}

	return &Connection{
		Read:  read,
		Write: write,
	}
}

func (c *Connection) Close() error {
	return errors.Join(c.Read.Close(), c.Write.Close())
}

// DSN builds the lib/pq connection URL for one endpoint, honouring DB_POSTGRES_PREFIX.
func DSN(endpoint config.PostgresEndpoint, prefix string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		endpoint.Username,
		endpoint.Password,
		net.JoinHostPort(endpoint.Host, endpoint.Port),
		prefix+endpoint.Name,
		endpoint.SSLMode,
	)
}

// CreatePostgresConnection connects with a fixed wait between attempts.
func CreatePostgresConnection(name string, endpoint config.PostgresEndpoint, config *config.Config) (*sqlx.DB, error) {
	descriptor := DSN(endpoint, config.DB.Postgres.Prefix)
	maxRetry := max(config.DB.Postgres.MaxRetry, 1)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", endpoint.Host).
				Str("port", endpoint.Port).
				Str("dbName", endpoint.Name).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB, nil
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", endpoint.Host).
			Str("port", endpoint.Port).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(config.DB.Postgres.RetryWaitTime) * time.Second)
	}

	return nil, fmt.Errorf("%s: %w", name, ErrConnectionExhausted)
}
