package create_reservation

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// UseCase создание бронирования клиентом
type UseCase struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute создаёт бронирование в статусе pending.
// Занятость слота на момент создания не проверяется: слот скрывается
// из выдачи доступности, а финальное решение принимает администратор
// при подтверждении. Гонка двух одновременных заявок разрешается вручную.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	if err := validateRequest(req, now); err != nil {
		return nil, err
	}

	reservation := &domain.Reservation{
		ClientName:       req.ClientName,
		ClientPhone:      req.ClientPhone,
		ClientEmail:      req.ClientEmail,
		ServiceName:      req.ServiceName,
		ProfessionalName: req.ProfessionalName,
		Date:             req.Date,
		StartTime:        req.StartTime,
		Status:           domain.StatusPending,
		WantsReminders:   req.WantsReminders,
		FirstVisit:       req.FirstVisit,
	}

	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		uc.logger.Error("create_reservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("create_reservation: created reservation %s for %s at %s %s",
		created.ID, created.ClientName, created.Date.Format(domain.DateFormat), created.StartTime)

	return &Response{Reservation: created}, nil
}
