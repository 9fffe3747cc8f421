// Package session is the single authority over the client's credential and
// the profile snapshot taken at login.
//
// A Store keeps the pair in memory and mirrors it to the local metadata
// table so it survives a restart. Reads never fail and never touch the
// database. Writes replace the whole pair: memory is swapped under one lock
// and the two rows are written in one transaction. A failed durable write is
// logged and otherwise ignored; the process keeps behaving as authenticated
// until it exits.
//
// Two processes sharing a database file are not kept in sync.
package session
