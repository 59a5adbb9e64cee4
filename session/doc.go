// Package session owns the inventory store for one session and serializes
// every dispatch against it. A Session is the only holder of its store; the
// store is created empty by New and dropped with the Session.
package session
