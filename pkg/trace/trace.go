package trace

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Topics understood by the library. Anything else named in HOCON_TRACE is
// accepted and simply never consulted.
const (
	// TopicLoads traces every source parse: origin, syntax, and whether
	// the missing-source fallback produced an empty result.
	TopicLoads = "loads"

	// TopicIncludes traces include resolution: the include target, the
	// resolving source, and the current include depth.
	TopicIncludes = "includes"

	// TopicSubstitutions traces ${} resolution path by path.
	TopicSubstitutions = "substitutions"

	// TopicAll enables every topic.
	TopicAll = "all"
)

// topicSet is a parsed HOCON_TRACE value.
type topicSet map[string]bool

// parseTopics splits a comma-separated topic list, ignoring empty entries
// and surrounding whitespace.
func parseTopics(spec string) topicSet {
	set := make(topicSet)
	for _, part := range strings.Split(spec, ",") {
		topic := strings.TrimSpace(part)
		if topic != "" {
			set[strings.ToLower(topic)] = true
		}
	}
	return set
}

func (s topicSet) enabled(topic string) bool {
	return s[TopicAll] || s[topic]
}

// logger returns a component-tagged child logger for topic, or a disabled
// logger when the topic is off.
func (s topicSet) logger(base zerolog.Logger, topic string) zerolog.Logger {
	if !s.enabled(topic) {
		return zerolog.Nop()
	}
	return base.With().Str("component", topic).Logger()
}

var (
	initOnce  sync.Once
	envTopics topicSet
	envBase   zerolog.Logger
)

// fromEnv parses HOCON_TRACE once per process.
func fromEnv() (topicSet, zerolog.Logger) {
	initOnce.Do(func() {
		envTopics = parseTopics(os.Getenv("HOCON_TRACE"))
		envBase = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	})
	return envTopics, envBase
}

// Enabled reports whether the given topic was named in HOCON_TRACE.
func Enabled(topic string) bool {
	topics, _ := fromEnv()
	return topics.enabled(topic)
}

// Logger returns a logger for the given topic. When the topic is not
// enabled the returned logger is disabled and logging through it costs
// almost nothing, so call sites need no Enabled guard of their own.
func Logger(topic string) zerolog.Logger {
	topics, base := fromEnv()
	return topics.logger(base, topic)
}
