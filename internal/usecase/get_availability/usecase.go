package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
)

// UseCase use case получения доступных слотов для записи
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	leadTime        time.Duration
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	leadTime time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		leadTime:        leadTime,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s, professional=%v",
		req.Date.Format(domain.DateFormat), strOrAll(req.Professional))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Читаем конфигурацию расписания; отсутствие - не ошибка, берем дефолты
	schedule, err := uc.scheduleRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Error("GetAvailability: failed to get schedule config: %v", err)
			return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
		}
		schedule = domain.DefaultWeeklySchedule()
		uc.logger.Info("GetAvailability: no schedule config stored, using defaults")
	}

	// 4. Расписание дня недели; отсутствующий день трактуется как закрытый
	day, ok := schedule.ForDate(req.Date)
	if !ok || !day.IsOpen {
		uc.logger.Info("GetAvailability: salon is closed on %s", req.Date.Format(domain.DateFormat))
		return uc.closedResponse(req), nil
	}

	// 5. Генерируем кандидатов слотов
	candidates, err := resolveSlots(day, schedule.SlotIntervalMinutes, uc.leadTime, req.Date, now)
	if err != nil {
		// Некорректная конфигурация дня: день считается закрытым,
		// проблема логируется для оператора
		uc.logger.Error("GetAvailability: day schedule for %s is invalid, treating as closed: %v",
			req.Date.Format(domain.DateFormat), err)
		return uc.closedResponse(req), nil
	}

	// 6. Получаем бронирования на эту дату (отклонённые освобождают слот
	// и не выбираются репозиторием)
	filter := domain.ReservationsFilter{
		From:         &req.Date,
		To:           &req.Date,
		Professional: req.Professional,
	}

	reservations, err := uc.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 7. Убираем занятые слоты
	available := filterAvailable(candidates, reservations, req.Date, req.Professional)

	slots := make([]Slot, len(available))
	for i, candidate := range available {
		slots[i] = Slot{
			StartTime: candidate.StartTime,
			Period:    candidate.Period,
		}
	}

	uc.logger.Info("GetAvailability: %d of %d slots available for date=%s, professional=%v",
		len(slots), len(candidates), req.Date.Format(domain.DateFormat), strOrAll(req.Professional))

	return &Response{
		Date:         req.Date,
		Professional: req.Professional,
		Closed:       false,
		Slots:        slots,
	}, nil
}

func (uc *UseCase) closedResponse(req *Request) *Response {
	return &Response{
		Date:         req.Date,
		Professional: req.Professional,
		Closed:       true,
		Slots:        []Slot{},
	}
}

func strOrAll(s *string) string {
	if s == nil {
		return "<all>"
	}
	return *s
}
