package middleware

import (
	"strings"
	"time"

	"github.com/dzonerzy/go-argparse/argparse"
	"github.com/dzonerzy/go-argparse/internal/pool"
)

// RequestInfo describes one action execution
type RequestInfo struct {
	Values    []string
	StartTime time.Time
	Duration  time.Duration
	Error     error
}

var requestInfoPool = pool.NewPoolWithReset(
	func() *RequestInfo {
		return &RequestInfo{Values: make([]string, 0, 8)}
	},
	func(info *RequestInfo) {
		info.Values = info.Values[:0]
		info.StartTime = time.Time{}
		info.Duration = 0
		info.Error = nil
	},
)

// Logger creates a middleware that logs each action execution: the parsed
// values at debug level, then the outcome and duration.
func Logger(options ...Option) Middleware {
	config := newConfig(options)

	return func(next ActionFunc) ActionFunc {
		return func(res *argparse.Result) error {
			if config.Logger == nil {
				return next(res)
			}

			info := requestInfoPool.Get()
			defer requestInfoPool.Put(info)

			if config.IncludeValues {
				for _, label := range res.Labels() {
					v, _ := res.Lookup(label)
					info.Values = append(info.Values, label+"="+v.String())
				}
				config.Logger.Debug("start values=%s", strings.Join(info.Values, " "))
			}

			info.StartTime = time.Now()
			err := next(res)
			info.Duration = time.Since(info.StartTime)
			info.Error = err

			if err != nil {
				config.Logger.Error("failed duration=%s error=%q", info.Duration, err.Error())
			} else {
				config.Logger.Info("done duration=%s", info.Duration)
			}
			return err
		}
	}
}
