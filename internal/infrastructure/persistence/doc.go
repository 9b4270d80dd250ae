// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer over PostgreSQL (including Supabase) or
// SQLite, storing profiles, agreements, signatures and bookings.
// Repositories join an enclosing transaction started by GormTransactor.
package persistence
