package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// ProfessionalRepository PostgreSQL репозиторий мастеров салона.
// Список услуг мастера хранится JSONB массивом имён.
type ProfessionalRepository struct {
	db DBExecutor
}

// NewProfessionalRepository создает новый экземпляр репозитория мастеров
func NewProfessionalRepository(db DBExecutor) *ProfessionalRepository {
	return &ProfessionalRepository{db: db}
}

// Create создает нового мастера
func (r *ProfessionalRepository) Create(ctx context.Context, prof *domain.Professional) (*domain.Professional, error) {
	servicesRaw, err := json.Marshal(prof.ServiceNames)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - encode services: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("professionals").
		Columns("name", "role", "service_names", "color").
		Values(prof.Name, prof.Role, servicesRaw, prof.Color).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&prof.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	prof.CreatedAt = createdAt.Time
	prof.UpdatedAt = updatedAt.Time

	return prof, nil
}

// List возвращает всех мастеров в порядке создания
func (r *ProfessionalRepository) List(ctx context.Context) ([]*domain.Professional, error) {
	query, args, err := psqlbuilder.Select("id", "name", "role", "service_names", "color", "created_at", "updated_at").
		From("professionals").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	professionals := make([]*domain.Professional, 0)
	for rows.Next() {
		prof, err := scanProfessional(rows)
		if err != nil {
			return nil, err
		}
		professionals = append(professionals, prof)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return professionals, nil
}

// Update обновляет мастера по prof.ID
func (r *ProfessionalRepository) Update(ctx context.Context, prof *domain.Professional) (*domain.Professional, error) {
	servicesRaw, err := json.Marshal(prof.ServiceNames)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - encode services: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("professionals").
		Set("name", prof.Name).
		Set("role", prof.Role).
		Set("service_names", servicesRaw).
		Set("color", prof.Color).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": prof.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	prof.CreatedAt = createdAt.Time
	prof.UpdatedAt = updatedAt.Time

	return prof, nil
}

// Delete удаляет мастера по ID
func (r *ProfessionalRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("professionals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProfessionalNotFound
	}

	return nil
}

func scanProfessional(rows *sql.Rows) (*domain.Professional, error) {
	var prof domain.Professional
	var servicesRaw []byte
	var createdAt, updatedAt sql.NullTime

	if err := rows.Scan(&prof.ID, &prof.Name, &prof.Role, &servicesRaw, &prof.Color, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: scanProfessional - scan row: %v", ErrScanRow, err)
	}

	if len(servicesRaw) > 0 {
		if err := json.Unmarshal(servicesRaw, &prof.ServiceNames); err != nil {
			return nil, fmt.Errorf("%w: scanProfessional - decode services: %v", ErrScanRow, err)
		}
	}

	prof.CreatedAt = createdAt.Time
	prof.UpdatedAt = updatedAt.Time

	return &prof, nil
}
