package engine

import (
	"errors"
	"strconv"
	"strings"

	"simpledb/row"
)

// StatementType identifies which of the two fixed statement shapes a
// Statement holds.
type StatementType int

const (
	StatementInsert StatementType = iota
	StatementSelect
)

// Statement is a prepared, ready-to-execute insert or select.
type Statement struct {
	Type        StatementType
	RowToInsert row.Row
}

// Parse-time errors, all user-visible and recoverable (spec.md §4.7 class 1).
var (
	ErrSyntax                = errors.New("syntax error. could not parse statement")
	ErrNegativeID            = errors.New("id must be positive")
	ErrStringTooLong         = errors.New("string is too long")
	ErrUnrecognizedStatement = errors.New("unrecognized keyword at start of statement")
)

// Prepare tokenizes and validates input into a Statement. It never mutates
// table state; validation failures leave nothing behind to roll back.
func Prepare(input string) (*Statement, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, ErrUnrecognizedStatement
	}

	switch fields[0] {
	case "insert":
		return prepareInsert(fields)
	case "select":
		return &Statement{Type: StatementSelect}, nil
	default:
		return nil, ErrUnrecognizedStatement
	}
}

func prepareInsert(fields []string) (*Statement, error) {
	if len(fields) != 4 {
		return nil, ErrSyntax
	}

	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, ErrSyntax
	}
	if id < 0 {
		return nil, ErrNegativeID
	}

	username, email := fields[2], fields[3]
	if len(username) > row.UsernameSize || len(email) > row.EmailSize {
		return nil, ErrStringTooLong
	}

	return &Statement{
		Type: StatementInsert,
		RowToInsert: row.Row{
			ID:       uint32(id),
			Username: username,
			Email:    email,
		},
	}, nil
}
