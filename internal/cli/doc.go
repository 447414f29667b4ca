// Package cli turns the process arguments and ANT25_* environment variables
// into an app.Config. Usage errors come back as *ExitError carrying the exit
// code the process should end with.
package cli
