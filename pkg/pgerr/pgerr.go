package pgerr

import (
	"context"
	"database/sql/driver"
	"errors"

	"github.com/lib/pq"
)

// Коды PostgreSQL, после которых операцию можно безопасно повторить
const (
	CodeSerializationFailure pq.ErrorCode = "40001"
	CodeDeadlockDetected     pq.ErrorCode = "40P01"
	CodeLockNotAvailable     pq.ErrorCode = "55P03"
	CodeQueryCanceled        pq.ErrorCode = "57014"
	CodeUniqueViolation      pq.ErrorCode = "23505"
)

// Code возвращает код ошибки PostgreSQL, если err её содержит
func Code(err error) (pq.ErrorCode, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code, true
	}
	return "", false
}

// IsRetryable сообщает, что ошибка вызвана конкуренцией или обрывом соединения
// и повтор операции с актуальным состоянием может пройти успешно
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	if code, ok := Code(err); ok {
		switch code {
		case CodeSerializationFailure, CodeDeadlockDetected, CodeLockNotAvailable, CodeQueryCanceled:
			return true
		}
		// Class 08 - connection exception
		return code.Class() == "08"
	}

	return errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded)
}

// IsUniqueViolation сообщает о нарушении уникального ограничения
func IsUniqueViolation(err error) bool {
	code, ok := Code(err)
	return ok && code == CodeUniqueViolation
}
