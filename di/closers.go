package di

import (
	"context"

	"staywise/infras/kafka"
	"staywise/infras/otel"
	"staywise/infras/postgres"
	"staywise/transport/http"

	goRedis "github.com/redis/go-redis/v9"
)

// provideClosers lists the resources released after the server stops,
// in the order they are closed.
func provideClosers(db *postgres.Connection, rdb *goRedis.Client, producer kafka.Client, provider *otel.Provider) http.Closers {
	return http.Closers{
		func(context.Context) error { return producer.Close() },
		func(context.Context) error { return rdb.Close() },
		func(context.Context) error { return db.Close() },
		provider.Shutdown,
	}
}
