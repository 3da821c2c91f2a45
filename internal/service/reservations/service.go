package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/reservation"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonService/internal/notify"
	"github.com/m04kA/SMC-SalonService/internal/service/reservations/models"
)

// Service сервис администрирования бронирований
type Service struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ReservationResponse, error) {
	reservation, err := s.getDomainByID(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает бронирования с фильтрацией по периоду, статусу и мастеру.
// Отклонённые заявки по умолчанию не возвращаются
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations, status=%v, professional=%v, includeDeclined=%v",
		req.Status, req.Professional, req.IncludeDeclined)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// Confirm подтверждает заявку (pending -> confirmed) и собирает WhatsApp-ссылку
// для отправки клиенту. Смена статуса первична: если ссылку собрать не удалось,
// подтверждение не откатывается, в ответе просто не будет ссылки
func (s *Service) Confirm(ctx context.Context, id string) (*models.ConfirmResponse, error) {
	s.logger.Info("Confirm: confirming reservation id=%s", id)

	reservation, err := s.transition(ctx, "Confirm", id, domain.StatusConfirmed)
	if err != nil {
		return nil, err
	}

	resp := &models.ConfirmResponse{
		Reservation: models.FromDomainReservation(reservation),
	}

	link, err := notify.WhatsAppLink(reservation)
	if err != nil {
		s.logger.Warn("Confirm: reservation id=%s confirmed, but whatsapp link failed: %v", id, err)
		return resp, nil
	}
	resp.WhatsAppLink = &link

	s.logger.Info("Confirm: successfully confirmed reservation id=%s", id)
	return resp, nil
}

// Decline отклоняет заявку (pending -> declined), слот снова становится доступным
func (s *Service) Decline(ctx context.Context, id string) (*models.ReservationResponse, error) {
	s.logger.Info("Decline: declining reservation id=%s", id)

	reservation, err := s.transition(ctx, "Decline", id, domain.StatusDeclined)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Decline: successfully declined reservation id=%s", id)
	return models.FromDomainReservation(reservation), nil
}

// Delete удаляет бронирование в любом статусе
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting reservation id=%s", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%s not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%s", id)
	return nil
}

// ICS собирает iCalendar-событие для подтверждённого бронирования.
// Длительность берётся из интервала слотов расписания
func (s *Service) ICS(ctx context.Context, id string, now time.Time) (string, error) {
	reservation, err := s.getDomainByID(ctx, "ICS", id)
	if err != nil {
		return "", err
	}

	if reservation.Status != domain.StatusConfirmed {
		s.logger.Warn("ICS: reservation id=%s has status %s, event not exported", id, reservation.Status)
		return "", fmt.Errorf("%w: status %s", ErrReservationNotConfirmed, reservation.Status)
	}

	durationMinutes := domain.DefaultSlotIntervalMinutes
	schedule, err := s.scheduleRepo.Get(ctx)
	switch {
	case err == nil:
		durationMinutes = schedule.SlotIntervalMinutes
	case errors.Is(err, scheduleRepo.ErrScheduleNotFound):
		// Конфигурация не сохранялась, используем дефолтный интервал
	default:
		s.logger.Error("ICS: failed to load schedule config: %v", err)
		return "", fmt.Errorf("%w: ICS - schedule repository error: %v", ErrInternal, err)
	}

	ics, err := notify.ICSEvent(reservation, durationMinutes, now)
	if err != nil {
		s.logger.Error("ICS: failed to build event for reservation id=%s: %v", id, err)
		return "", fmt.Errorf("%w: ICS - failed to build event: %v", ErrInternal, err)
	}

	return ics, nil
}

// Вспомогательные методы

func (s *Service) getDomainByID(ctx context.Context, op, id string) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%s not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return reservation, nil
}

// transition переводит заявку в целевой статус.
// Разрешены только переходы из pending, подтверждённые и отклонённые
// заявки финальны
func (s *Service) transition(ctx context.Context, op, id string, target domain.ReservationStatus) (*domain.Reservation, error) {
	reservation, err := s.getDomainByID(ctx, op, id)
	if err != nil {
		return nil, err
	}

	if !reservation.CanTransitionTo(target) {
		s.logger.Warn("%s: reservation id=%s cannot transition %s -> %s", op, id, reservation.Status, target)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, reservation.Status, target)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, target); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%s not found during update", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	reservation.Status = target
	return reservation, nil
}
