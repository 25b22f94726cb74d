package mock

import (
	"time"

	"github.com/quarryhq/quarry/core"
)

type resultStreamConfig struct {
	nextSleep time.Duration
	nextErr   error
	meta      *core.Meta
	header    core.Header
}

type ResultStreamOption func(*resultStreamConfig)

func ResultStreamWithNextSleep(sleep time.Duration) ResultStreamOption {
	return func(c *resultStreamConfig) {
		c.nextSleep = sleep
	}
}

// ResultStreamWithNextError makes every Next call fail with the given error.
func ResultStreamWithNextError(err error) ResultStreamOption {
	return func(c *resultStreamConfig) {
		c.nextErr = err
	}
}

func ResultStreamWithHeader(header core.Header) ResultStreamOption {
	return func(c *resultStreamConfig) {
		c.header = header
	}
}

func ResultStreamWithMeta(meta *core.Meta) ResultStreamOption {
	return func(c *resultStreamConfig) {
		c.meta = meta
	}
}
