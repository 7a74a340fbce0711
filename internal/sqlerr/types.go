package sqlerr

import "github.com/jackc/pgx/v5/pgconn"

// Code classifies a Postgres SQLSTATE into an application-level category.
type Code int

const (
	// Other covers SQLSTATEs we have no specific handling for.
	Other Code = iota
	ForeignKeyViolation
	UniqueViolation
	NotNullViolation
	CheckViolation
)

// Severity mirrors the Postgres error severity field.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityError
	SeverityFatal
	SeverityPanic
)

// Error is the normalized form of a Postgres driver error. It keeps the
// original SQLSTATE and schema metadata so error mapping can produce
// entity-aware messages.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string // original SQLSTATE
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr *pgconn.PgError
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original driver error to errors.Is/As chains.
func (e *Error) Unwrap() error {
	if e.driverErr == nil {
		return nil
	}
	return e.driverErr
}

// MapCode maps a Postgres SQLSTATE to a Code.
//
// Relevant SQLSTATE class 23 (integrity constraint violation) values:
//
//	23503 foreign_key_violation
//	23505 unique_violation
//	23502 not_null_violation
//	23514 check_violation
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	default:
		return Other
	}
}

// MapSeverity maps the Postgres severity string to a Severity.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	default:
		return SeverityUnknown
	}
}
