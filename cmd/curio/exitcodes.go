package main

// Exit codes shared across commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing config, invalid paths)
	ExitDataError   = 3 // Data error (load/save failure, validation failure)
	ExitNotFound    = 4 // Item not found
)
