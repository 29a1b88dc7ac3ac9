// Package resource — реестр бронируемых ресурсов (жилье и гиды).
// Только чтение: существование и отображаемое имя.
package resource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/tourmp/TMP-ReservationService/internal/domain"
	"github.com/tourmp/TMP-ReservationService/pkg/dbmetrics"
	"github.com/tourmp/TMP-ReservationService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository реестр ресурсов поверх таблиц homestays и guides
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр реестра ресурсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// tableAndTitle возвращает таблицу и колонку отображаемого имени для типа
// ресурса. Новый тип ресурса добавляется сюда — default не даст забыть.
func tableAndTitle(t domain.ResourceType) (table string, titleColumn string, err error) {
	switch t {
	case domain.ResourceHomestay:
		return "homestays", "title", nil
	case domain.ResourceGuide:
		return "guides", "full_name", nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownResourceType, t)
	}
}

// Exists проверяет, что ресурс существует и доступен для бронирования
func (r *Repository) Exists(ctx context.Context, ref domain.ResourceRef) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	table, _, err := tableAndTitle(ref.Type)
	if err != nil {
		return false, err
	}

	query, args, err := psqlbuilder.Select("1").
		From(table).
		Where(squirrel.Eq{"id": ref.ID, "is_active": true}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// TitleOf возвращает отображаемое имя ресурса.
// Для отсутствующего ресурса возвращает nil без ошибки — имя опционально.
func (r *Repository) TitleOf(ctx context.Context, ref domain.ResourceRef) (*string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	table, titleColumn, err := tableAndTitle(ref.Type)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Select(titleColumn).
		From(table).
		Where(squirrel.Eq{"id": ref.ID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: TitleOf - build select query: %v", ErrBuildQuery, err)
	}

	var title string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: TitleOf - execute query: %v", ErrExecQuery, err)
	}

	return &title, nil
}
