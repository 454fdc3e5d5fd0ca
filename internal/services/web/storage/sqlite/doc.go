// Package sqlite provides the web session persistence adapter backed by SQLite.
//
// Session ids are stored as SHA-256 digests so a copied database file cannot
// be replayed as cookies.
package sqlite
