// Package storage declares persistence contracts for web-owned session data.
//
// Sessions are created by the auth service; the web service only reads them
// to decide whether a visitor is signed in.
package storage
