// Package logger builds log/slog loggers with context-derived attributes.
//
// A ContextExtractor pulls one attribute out of a context; extractors run on
// every record, so values stored in the context at call time are always fresh:
//
//	sourceExtractor := func(ctx context.Context) (slog.Attr, bool) {
//		if src, ok := ctx.Value(sourceKey{}).(string); ok {
//			return slog.String("source", src), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(os.Stderr, slog.LevelDebug, sourceExtractor)
//	log.DebugContext(ctx, "slug generated", slog.Int("length", 11))
//	// time=... level=DEBUG msg="slug generated" length=11 source=stdin
//
// The LogHandlerDecorator wraps any slog.Handler with the same behaviour.
// NewNope returns a logger that discards everything and is the default when
// logging is not configured.
package logger
