package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestIsMySQLError(t *testing.T) {
	fk := &mysql.MySQLError{Number: mysqlErrForeignKey, Message: "foreign key constraint fails"}

	if !isMySQLError(fk, mysqlErrForeignKey) {
		t.Error("foreign key error not recognized")
	}
	if isMySQLError(fk, mysqlErrDuplicateEntry) {
		t.Error("error numbers must not be conflated")
	}
	if !isMySQLError(fmt.Errorf("insert: %w", fk), mysqlErrForeignKey) {
		t.Error("wrapped driver errors must be recognized")
	}
	if isMySQLError(errors.New("boom"), mysqlErrForeignKey) {
		t.Error("non-driver errors must not match")
	}
}
