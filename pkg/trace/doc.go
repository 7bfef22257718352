// Package trace provides opt-in diagnostic logging for the HOCON library.
//
// Parsing problems in layered configuration are often "which file did that
// value actually come from" problems. Setting the HOCON_TRACE environment
// variable to a comma-separated list of topics makes the library narrate
// what it is doing on stderr:
//
//	HOCON_TRACE=loads          # every source parsed, fallbacks included
//	HOCON_TRACE=includes       # include directive resolution
//	HOCON_TRACE=substitutions  # ${} reference resolution
//	HOCON_TRACE=all            # everything
//
// Topics compose: HOCON_TRACE=loads,includes enables both.
//
// Inside the library, call sites fetch a topic logger and log through it
// unconditionally; when the topic is off the logger is a zerolog no-op:
//
//	log := trace.Logger(trace.TopicLoads)
//	log.Debug().Str("origin", origin.Description()).Msg("parsing source")
//
// The environment variable is read once per process. Tracing is meant for
// humans debugging configuration, not for production telemetry, so there
// are no levels or outputs to configure.
package trace
