package reservation

import "github.com/m04kA/SMC-SalonService/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя из dbmetrics, чтобы репозиторий
// одинаково работал с *sql.DB и обёрткой метрик
type DBExecutor = dbmetrics.DBExecutor
