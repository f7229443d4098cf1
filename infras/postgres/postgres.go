package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"mallbook/config"
	"net"
	"net/url"
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

// Connection splits reads and writes. Both may point at the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	name     string
	host     string
	port     string
	username string
	password string
	dbName   string
	sslMode  string
	timezone string
}

// descriptor builds the lib/pq URL. The session timezone decides how DATE and TIMESTAMPTZ values
// are read, so booking dates stay on the mall calendar.
func (e endpoint) descriptor() string {
	query := url.Values{}
	query.Set("sslmode", e.sslMode)

	if e.timezone != "" {
		query.Set("timezone", e.timezone)
	}

	return (&url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.username, e.password),
		Host:     net.JoinHostPort(e.host, e.port),
		Path:     e.dbName,
		RawQuery: query.Encode(),
	}).String()
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	return &Connection{
		Read:  connect(newEndpoint(cfg, "read", pg.Read), pg.MaxRetry, pg.RetryWaitTime),
		Write: connect(newEndpoint(cfg, "write", pg.Write), pg.MaxRetry, pg.RetryWaitTime),
	}
}

func newEndpoint(cfg *config.Config, name string, node config.PostgresNode) endpoint {
	return endpoint{
		name:     name,
		host:     node.Host,
		port:     node.Port,
		username: node.Username,
		password: node.Password,
		dbName:   cfg.DatabaseName(node),
		sslMode:  node.SSLMode,
		timezone: node.Timezone,
	}
}

// Close releases both pools.
func (c *Connection) Close() error {
	var errs []error

	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// connect retries up to maxRetry times and aborts the process when the database never answers.
func connect(e endpoint, maxRetry, waitTime int) *sqlx.DB {
	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", e.descriptor())
		if err == nil {
			log.Info().
				Str("name", e.name).
				Str("host", e.host).
				Str("port", e.port).
				Str("dbName", e.dbName).
				Msg("Connected to database")

			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		log.Error().
			Err(err).
			Str("name", e.name).
			Str("host", e.host).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Fatal().Str("name", e.name).Msg(fmt.Sprintf("Database unreachable after %d attempts", max(maxRetry, 1)))

	return nil
}
