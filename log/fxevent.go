package log

import (
	"github.com/rs/zerolog"
	"go.uber.org/dig"
	"go.uber.org/fx/fxevent"

	"github.com/thanhminhmr/go-errchain/chain"
)

// fxLogger is an event logger that logs events to Zerolog.
type fxLogger struct {
	*zerolog.Logger
}

// InitFxLogger returns the logger instance for Zerolog.
func InitFxLogger(logger *zerolog.Logger) fxevent.Logger {
	return fxLogger{Logger: logger}
}

// failed renders err with its whole cause chain, plus the root cause that the
// dependency graph reports for it.
func (l fxLogger) failed(err error) *zerolog.Event {
	event := l.Error().Str("error", chain.String(err))
	if root := dig.RootCause(err); root != err {
		event = event.Str("root_cause", chain.String(root))
	}
	return event
}

type moduleName string

func (m moduleName) MarshalZerologObject(event *zerolog.Event) {
	if m != "" {
		event.Str("name", string(m))
	}
}

// LogEvent logs the given event to the provided Zerolog.
func (l fxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.OnStartExecuting:
		l.Trace().
			Str("callee", e.FunctionName).
			Str("caller", e.CallerName).
			Msg("OnStart hook executing")
	case *fxevent.OnStartExecuted:
		if e.Err != nil {
			l.failed(e.Err).
				Str("callee", e.FunctionName).
				Str("caller", e.CallerName).
				Msg("OnStart hook failed")
		} else {
			l.Trace().
				Str("callee", e.FunctionName).
				Str("caller", e.CallerName).
				Dur("runtime", e.Runtime).
				Msg("OnStart hook executed")
		}
	case *fxevent.OnStopExecuting:
		l.Trace().
			Str("callee", e.FunctionName).
			Str("caller", e.CallerName).
			Msg("OnStop hook executing")
	case *fxevent.OnStopExecuted:
		if e.Err != nil {
			l.failed(e.Err).
				Str("callee", e.FunctionName).
				Str("caller", e.CallerName).
				Msg("OnStop hook failed")
		} else {
			l.Trace().
				Str("callee", e.FunctionName).
				Str("caller", e.CallerName).
				Dur("runtime", e.Runtime).
				Msg("OnStop hook executed")
		}
	case *fxevent.Supplied:
		if e.Err != nil {
			l.failed(e.Err).
				Str("type", e.TypeName).
				EmbedObject(moduleName(e.ModuleName)).
				Msg("Error encountered while applying options")
		} else {
			l.Info().
				Str("type", e.TypeName).
				EmbedObject(moduleName(e.ModuleName)).
				Msg("Supplied")
		}
	case *fxevent.Provided:
		if e.Err != nil {
			l.failed(e.Err).
				Str("constructor", e.ConstructorName).
				Strs("types", e.OutputTypeNames).
				EmbedObject(moduleName(e.ModuleName)).
				Msg("Error encountered while applying options")
		} else {
			l.Info().
				Str("constructor", e.ConstructorName).
				Strs("types", e.OutputTypeNames).
				EmbedObject(moduleName(e.ModuleName)).
				Bool("private", e.Private).
				Msg("Provided")
		}
	case *fxevent.Replaced:
		if e.Err != nil {
			l.failed(e.Err).
				Strs("types", e.OutputTypeNames).
				EmbedObject(moduleName(e.ModuleName)).
				Msg("Error encountered while replacing")
		} else {
			l.Info().
				Strs("types", e.OutputTypeNames).
				EmbedObject(moduleName(e.ModuleName)).
				Msg("Replaced")
		}
	case *fxevent.Decorated:
		if e.Err != nil {
			l.failed(e.Err).
				Str("decorator", e.DecoratorName).
				Strs("types", e.OutputTypeNames).
				EmbedObject(moduleName(e.ModuleName)).
				Msg("Error encountered while applying options")
		} else {
			l.Info().
				Str("decorator", e.DecoratorName).
				Strs("types", e.OutputTypeNames).
				EmbedObject(moduleName(e.ModuleName)).
				Msg("Decorated")
		}
	case *fxevent.BeforeRun:
		l.Trace().
			Str("name", e.Name).
			Str("kind", e.Kind).
			EmbedObject(moduleName(e.ModuleName)).
			Msg("Before run")
	case *fxevent.Run:
		if e.Err != nil {
			l.failed(e.Err).
				Str("name", e.Name).
				Str("kind", e.Kind).
				EmbedObject(moduleName(e.ModuleName)).
				Dur("runtime", e.Runtime).
				Msg("Run failed")
		} else {
			l.Trace().
				Str("name", e.Name).
				Str("kind", e.Kind).
				EmbedObject(moduleName(e.ModuleName)).
				Dur("runtime", e.Runtime).
				Msg("After run")
		}
	case *fxevent.Invoking:
		l.Info().
			Str("function", e.FunctionName).
			EmbedObject(moduleName(e.ModuleName)).
			Msg("Invoking")
	case *fxevent.Invoked:
		if e.Err != nil {
			l.failed(e.Err).
				Str("function", e.FunctionName).
				EmbedObject(moduleName(e.ModuleName)).
				Msg("Invoke failed")
		}
	case *fxevent.Stopping:
		l.Info().
			Stringer("signal", e.Signal).
			Msg("Received signal")
	case *fxevent.Stopped:
		if e.Err != nil {
			l.failed(e.Err).Msg("Stop failed")
		}
	case *fxevent.RollingBack:
		l.failed(e.StartErr).Msg("Start failed, rolling back")
	case *fxevent.RolledBack:
		if e.Err != nil {
			l.failed(e.Err).Msg("Rollback failed")
		}
	case *fxevent.Started:
		if e.Err != nil {
			l.failed(e.Err).Msg("Start failed")
		} else {
			l.Info().Msg("Started")
		}
	case *fxevent.LoggerInitialized:
		if e.Err != nil {
			l.failed(e.Err).Msg("Logger initialization failed")
		} else {
			l.Info().Str("function", e.ConstructorName).Msg("Initialized logger")
		}
	}
}
