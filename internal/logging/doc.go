// Package logger provides structured logging for soundness CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is formatted with colored prefixes.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only warnings and errors are shown.
//
// # Log Methods
//
//	Logger.Infof()          // Shown with --verbose or --debug
//	Logger.Debugf()         // Shown only with --debug
//	Logger.Warnf()          // Always shown on stderr
//	Logger.WarnfUser()      // User-facing warnings without the [warn] prefix
//	Logger.Errorf()         // Always shown on stderr
//	Logger.ErrorfAndReturn() // Logs with --debug and returns the error
//
// # Usage
//
// The root command creates a logger in its PersistentPreRun and subcommands
// use it directly:
//
//	Logger = logger.Logger{Verbose: verbose, Debug: debug}
//	Logger.Infof("Loaded %d key pairs", count)
//
// Key material and passwords must never be passed to the logger.
package logger
