package mock

import "context"

type adapterConfig struct {
	querySideEffects    map[string]func(context.Context) error
	resultStreamOptions []ResultStreamOption
}

type AdapterOption func(*adapterConfig)

// AdapterWithQuerySideEffect triggers fn whenever the given query is executed.
// An error returned from fn fails the query.
func AdapterWithQuerySideEffect(query string, fn func(context.Context) error) AdapterOption {
	return func(c *adapterConfig) {
		c.querySideEffects[query] = fn
	}
}

// AdapterWithResultStreamOpts passes the options to every produced result stream.
func AdapterWithResultStreamOpts(opts ...ResultStreamOption) AdapterOption {
	return func(c *adapterConfig) {
		c.resultStreamOptions = append(c.resultStreamOptions, opts...)
	}
}
