package helper

import (
	"database/sql"
)

// =======================
// RAW VALUE TO NULL (POSTGRES)
// =======================

// RawStringToNull menerima string biasa; string kosong dianggap NULL
func RawStringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// RawInt32ToNull menerima int32 biasa
func RawInt32ToNull(i int32) sql.NullInt32 {
	return sql.NullInt32{Int32: i, Valid: true}
}

// =======================
// NULL TO RAW VALUE
// =======================

func NullStringValue(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

func NullInt32Value(ni sql.NullInt32) int32 {
	if !ni.Valid {
		return 0
	}
	return ni.Int32
}

// =======================
// POINTER HELPERS
// =======================

func StringToNull(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func StringPtrValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
