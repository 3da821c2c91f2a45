package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type DBExecutor = dbmetrics.DBExecutor

// Конфигурация хранится единственной строкой с фиксированным id
const configRowID = 1

// dayScheduleRecord JSONB представление расписания одного дня.
// Ключи дней - индексы weekday "0".."6" (0 = воскресенье), как в исходном виджете.
type dayScheduleRecord struct {
	IsOpen    bool   `json:"isOpen"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Repository PostgreSQL репозиторий конфигурации расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get читает единственную строку конфигурации.
// Возвращает ErrScheduleNotFound, если конфигурация ещё не сохранялась.
func (r *Repository) Get(ctx context.Context) (*domain.WeeklySchedule, error) {
	query, args, err := psqlbuilder.Select("days", "slot_interval_minutes", "updated_at").
		From("schedule_config").
		Where(squirrel.Eq{"id": configRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var daysRaw []byte
	var interval int
	var updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&daysRaw, &interval, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan config: %v", ErrScanRow, err)
	}

	days, err := decodeDays(daysRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - decode days: %v", ErrScanRow, err)
	}

	return &domain.WeeklySchedule{
		Days:                days,
		SlotIntervalMinutes: interval,
		UpdatedAt:           updatedAt.Time,
	}, nil
}

// Set сохраняет конфигурацию целиком (upsert единственной строки)
// и возвращает сохраненное расписание с проставленным updated_at
func (r *Repository) Set(ctx context.Context, schedule *domain.WeeklySchedule) (*domain.WeeklySchedule, error) {
	daysRaw, err := encodeDays(schedule.Days)
	if err != nil {
		return nil, fmt.Errorf("%w: Set - encode days: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("schedule_config").
		Columns("id", "days", "slot_interval_minutes", "updated_at").
		Values(configRowID, daysRaw, schedule.SlotIntervalMinutes, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (id) DO UPDATE SET days = EXCLUDED.days, slot_interval_minutes = EXCLUDED.slot_interval_minutes, updated_at = NOW()").
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}

	schedule.UpdatedAt = updatedAt.Time
	return schedule, nil
}

func encodeDays(days map[time.Weekday]domain.DaySchedule) ([]byte, error) {
	records := make(map[string]dayScheduleRecord, len(days))
	for wd, day := range days {
		records[strconv.Itoa(int(wd))] = dayScheduleRecord{
			IsOpen:    day.IsOpen,
			StartTime: day.StartTime.String(),
			EndTime:   day.EndTime.String(),
		}
	}
	return json.Marshal(records)
}

func decodeDays(raw []byte) (map[time.Weekday]domain.DaySchedule, error) {
	var records map[string]dayScheduleRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}

	days := make(map[time.Weekday]domain.DaySchedule, len(records))
	for key, rec := range records {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx > 6 {
			return nil, fmt.Errorf("invalid weekday key %q", key)
		}
		// Сырые строки времени не валидируются здесь: некорректное время
		// трактуется резолвером как закрытый день (см. usecase get_availability)
		days[time.Weekday(idx)] = domain.DaySchedule{
			IsOpen:    rec.IsOpen,
			StartTime: types.TimeString(rec.StartTime),
			EndTime:   types.TimeString(rec.EndTime),
		}
	}
	return days, nil
}
