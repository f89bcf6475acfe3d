// Package core contains the canonical webhook invocation contracts, the
// unified invoker configuration, and the error envelope. Lower-level
// packages (invoker, command, facade) depend on this package; core must not
// depend on transport or host-framework adapters.
package core
