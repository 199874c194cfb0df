// Package output renders completed audit reports.
//
// Four formats are supported: grouped text (the default, one block per
// namespace), a flat kubectl-style table, JSON, and YAML. All formats sort
// namespaces lexicographically, so the rendered report is a pure function
// of the report contents: the order in which namespace fetches completed
// never leaks into the output.
//
// The human formats deliberately render a failed fetch the same way as a
// namespace with no routes, with an explicit "(no routes)" marker; failure
// diagnostics go to the log stream as they happen. The machine formats
// keep the distinction through a per-namespace status and error field.
//
// Colors are enabled only for TTY outputs and can be forced off with
// WithNoColor.
package output
