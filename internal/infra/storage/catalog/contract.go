package catalog

import "github.com/m04kA/DiveOps-ReservationEngine/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
