package reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/service/allocator"
	"github.com/m04kA/DiveOps-ReservationEngine/pkg/pgerr"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных. Состояние не изменяется.
	ErrInvalidInput = errors.New("reservation: invalid input data")

	// ErrEquipmentNotFound возвращается, когда позиция снаряжения не найдена
	ErrEquipmentNotFound = errors.New("reservation: equipment not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("reservation: staff member not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reservation: booking not found")

	// ErrAssignmentNotFound возвращается, когда аренда или назначение не найдены
	ErrAssignmentNotFound = errors.New("reservation: assignment not found")

	// ErrNotRentable возвращается для снаряжения, не выдаваемого в аренду
	ErrNotRentable = errors.New("reservation: equipment is not rentable")

	// ErrStaffUnavailable возвращается, когда сотрудник вручную отмечен недоступным
	ErrStaffUnavailable = errors.New("reservation: staff member is unavailable")

	// ErrCertificationExpired возвращается, когда сертификат истекает до конца окна
	ErrCertificationExpired = errors.New("reservation: staff certification expires before window end")

	// ErrAlreadyReturned возвращается при повторном возврате аренды
	ErrAlreadyReturned = errors.New("reservation: rental already returned")

	// ErrAlreadyReleased возвращается при повторном снятии назначения
	ErrAlreadyReleased = errors.New("reservation: staff assignment already released")

	// ErrPersistence сбой хранилища или внешнего сервиса. Операцию можно повторить.
	ErrPersistence = errors.New("reservation: persistence error")

	// ErrInternal постоянная ошибка хранилища (нарушение ограничения, ошибка в запросе). Повтор не поможет.
	ErrInternal = errors.New("reservation: internal error")

	// ErrResourceBusy ресурс занят конкурирующей операцией дольше допустимого. Операцию можно повторить.
	ErrResourceBusy = errors.New("reservation: resource busy")
)

var rejections = []error{
	domain.ErrInsufficientAvailability,
	domain.ErrScheduleConflict,
	ErrAlreadyReturned,
	ErrAlreadyReleased,
	ErrNotRentable,
	ErrStaffUnavailable,
	ErrCertificationExpired,
}

var notFound = []error{
	ErrEquipmentNotFound,
	ErrStaffNotFound,
	ErrBookingNotFound,
	ErrAssignmentNotFound,
}

// IsRejection true для ожидаемых бизнес-отказов ("нет", а не "сломалось")
func IsRejection(err error) bool {
	return isAny(err, rejections)
}

// IsNotFound true для ссылок на несуществующие сущности
func IsNotFound(err error) bool {
	return isAny(err, notFound)
}

// IsRetryable true для инфраструктурных сбоев, после которых запрос можно повторить
func IsRetryable(err error) bool {
	return errors.Is(err, ErrPersistence) || errors.Is(err, ErrResourceBusy)
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// classify оставляет известные ошибки как есть. Ошибка PostgreSQL с постоянным кодом
// становится ErrInternal, прочие неизвестные ошибки считаются повторяемым сбоем хранилища.
func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case isPermanentDBError(err):
		// цепочка ErrPersistence отбрасывается, иначе ошибка считалась бы повторяемой
		return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInternal), IsRejection(err), IsNotFound(err), IsRetryable(err):
		return err
	case errors.Is(err, allocator.ErrResourceBusy):
		return fmt.Errorf("%w: %s: %w", ErrResourceBusy, op, err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
	}
}

func isPermanentDBError(err error) bool {
	_, ok := pgerr.Code(err)
	return ok && !pgerr.IsRetryable(err)
}

// outcome метка исхода операции для метрик
func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidInput):
		return "invalid"
	case IsNotFound(err):
		return "not_found"
	case IsRejection(err):
		return "rejected"
	case errors.Is(err, ErrResourceBusy):
		return "busy"
	default:
		return "error"
	}
}
