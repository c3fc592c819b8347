package core

import (
	"io"

	"github.com/sirupsen/logrus"
)

const DefaultName = "bgqueue"

type Options struct {
	Logger logrus.FieldLogger
	Name   string
}

type Option func(*Options)

// WithLogger sets the logger for worker lifecycle events. Nil keeps the
// default, which discards output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func WithName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Name = name
		}
	}
}

func NewOptions(opts ...Option) Options {
	o := Options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.Logger = GetLogger(o)
	o.Name = GetName(o, DefaultName)
	return o
}

func GetLogger(o Options) logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func GetName(o Options, defaultName string) string {
	if o.Name != "" {
		return o.Name
	}
	return defaultName
}
