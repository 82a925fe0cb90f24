package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL/MariaDB error numbers translated into model errors, so handlers map
// status codes without inspecting driver types.
const (
	mysqlErrDuplicateEntry = 1062
	mysqlErrForeignKey     = 1452
)

func isMySQLError(err error, number uint16) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == number
}
