// Package example shows how to serve an in-process registry through the HTTP adapter.
package example
