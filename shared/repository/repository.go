package repository

import (
	"context"
	"fmt"
	"reflect"
	"staywise/infras/otel"
	"staywise/infras/postgres"
	"staywise/shared/constant"
	"staywise/shared/dto"
	"staywise/shared/logger"
	"strings"
)

// Repository is a read-only table gateway. Columns are the `db` tags of T,
// embedded structs contribute their own tags.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       getColumns(reflect.TypeOf(zero)),
	}
}

// GetAll reads every row matching filter. Rows are ordered by params when it names
// a known column, the primary key breaks ties so repeated reads agree.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	query, args := repo.selectQuery(params, filter)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &models, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entity, err)
	}

	return models, nil
}

func (repo *Repository[T]) selectQuery(params dto.QueryParams, filter dto.FilterGroup) (string, map[string]any) {
	selected := make([]string, len(repo.columns))
	for i, column := range repo.columns {
		selected[i] = repo.table + "." + column
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(selected, ", "), repo.table)

	where, args := filter.GetWhereClause()
	if where != "" {
		query += " WHERE " + where
	}

	ordering := []string{}
	if column, ok := repo.sortColumn(params.SortBy); ok {
		direction := dto.SortDirAsc
		if strings.EqualFold(params.SortDir, dto.SortDirDesc) {
			direction = dto.SortDirDesc
		}

		ordering = append(ordering, column+" "+direction)
	}

	if repo.primaryColumn != "" && params.SortBy != repo.primaryColumn {
		ordering = append(ordering, repo.table+"."+repo.primaryColumn+" "+dto.SortDirAsc)
	}

	if len(ordering) > 0 {
		query += " ORDER BY " + strings.Join(ordering, ", ")
	}

	return query, args
}

// sortColumn resolves a sort key against the known columns so request input never reaches the query verbatim.
func (repo *Repository[T]) sortColumn(sortBy string) (string, bool) {
	for _, column := range repo.columns {
		if column == sortBy {
			return repo.table + "." + column, true
		}
	}

	return "", false
}

func getColumns(reflectType reflect.Type) (columns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, getColumns(field.Type)...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		columns = append(columns, dbTag)
	}

	return columns
}
