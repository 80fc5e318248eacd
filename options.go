package govali

import "go.uber.org/zap"

// Option configures a Domain, Constructor or Builder at creation time.
type Option func(*options)

type options struct {
	name     string
	strategy Strategy
	logger   *zap.Logger
}

// WithName overrides the target name shown in Results messages (defaults to the Go type name).
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithStrategy sets the initial strategy (CollectAll when omitted).
func WithStrategy(s Strategy) Option {
	return func(o *options) { o.strategy = s }
}

// WithLogger enables debug records for every validation run. Nil loggers are ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions[T any](opts []Option) options {
	o := options{strategy: CollectAll, logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.name == "" {
		o.name = typeName[T]()
	}
	mustArgument(o.name != "", "target name must not be empty")
	return o
}

func logRun(l *zap.Logger, target string, s Strategy, bindings int, res *Results) {
	if ce := l.Check(zap.DebugLevel, "validation finished"); ce != nil {
		ce.Write(
			zap.String("target", target),
			zap.Stringer("strategy", s),
			zap.Int("bindings", bindings),
			zap.Int("failures", res.Len()),
			zap.Strings("fields", res.Fields()),
		)
	}
}
