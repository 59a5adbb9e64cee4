// Package testutil contains helper builders used across tests to reduce
// boilerplate when constructing seeded inventory sessions and scripted model
// conversations. They are not intended for production usage.
package testutil
