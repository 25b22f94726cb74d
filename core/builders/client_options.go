package builders

import "strings"

type clientConfig struct {
	typeProcessors map[string]TypeProcessor
}

type ClientOption func(*clientConfig)

// WithTypeProcessor registers a conversion for a database type name (matched
// case-insensitively against ColumnType.DatabaseTypeName).
func WithTypeProcessor(typ string, fn TypeProcessor) ClientOption {
	return func(cc *clientConfig) {
		t := strings.ToLower(typ)
		_, ok := cc.typeProcessors[t]
		if ok {
			// processor already registered for this type
			return
		}

		cc.typeProcessors[t] = fn
	}
}
