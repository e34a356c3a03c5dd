// Package session stores the persisted client session as key/value rows in
// the local SQLite database. Callers pass either *sql.DB or a transaction
// (see dbx.DBTX) so several keys can be written atomically.
package session
