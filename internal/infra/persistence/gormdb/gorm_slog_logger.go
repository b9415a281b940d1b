package gormdb

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"taskhub/config"
	"taskhub/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowStatementThreshold = 200 * time.Millisecond

// bcryptHashPattern matches password hashes that GORM inlines into the statement text.
var bcryptHashPattern = regexp.MustCompile(`\$2[abxy]\$\d{2}\$[./A-Za-z0-9]{53}`)

const redactedValue = "[REDACTED]"

// statementOutcome classifies a finished statement for logging.
type statementOutcome int

const (
	outcomeOK statementOutcome = iota
	outcomeSlow
	outcomeNotFound
	outcomeConstraint
	outcomeFailed
)

// statementLogger routes GORM's statement log into slog.
//
// Missing rows and constraint violations are translated into domain errors by
// the repositories, so they are reported at Debug and Warn rather than Error.
// Password hashes never reach the log.
type statementLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
	slow   time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	driver := ""
	if cfg != nil {
		driver = cfg.Store.Driver
		if cfg.Env.Debug {
			level = logger.Info
		}
	}

	if baseLogger == nil {
		return logger.Discard
	}

	return &statementLogger{
		logger: baseLogger.With(slog.String("component", "gorm"), slog.String("driver", driver)),
		level:  level,
		slow:   slowStatementThreshold,
	}
}

func (l *statementLogger) LogMode(level logger.LogLevel) logger.Interface {
	next := *l
	next.level = level

	return &next
}

func (l *statementLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *statementLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *statementLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *statementLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < threshold {
		return
	}

	l.logger.LogAttrs(ctx, level, "GORM "+level.String(),
		slog.String("message", redactSecrets(fmt.Sprintf(msg, args...))),
	)
}

func (l *statementLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	outcome := l.classify(elapsed, err)

	var (
		level slog.Level
		msg   string
	)

	switch outcome {
	case outcomeFailed:
		if l.level < logger.Error {
			return
		}
		level, msg = slog.LevelError, "GORM query failed"
	case outcomeConstraint:
		if l.level < logger.Warn {
			return
		}
		level, msg = slog.LevelWarn, "GORM constraint violation"
	case outcomeSlow:
		if l.level < logger.Warn {
			return
		}
		level, msg = slog.LevelWarn, "GORM slow query"
	default:
		if l.level < logger.Info {
			return
		}
		level, msg = slog.LevelDebug, "GORM query"
	}

	sql, rows := fc()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", redactSecrets(sql)),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", redactSecrets(err.Error())))
	}
	if outcome == outcomeSlow {
		attrs = append(attrs, slog.Duration("slow_threshold", l.slow))
	}

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}

func (l *statementLogger) classify(elapsed time.Duration, err error) statementOutcome {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return outcomeNotFound
	case isUniqueConstraintViolation(err), isForeignKeyConstraintViolation(err):
		return outcomeConstraint
	case err != nil:
		return outcomeFailed
	case l.slow > 0 && elapsed > l.slow:
		return outcomeSlow
	default:
		return outcomeOK
	}
}

func redactSecrets(s string) string {
	return bcryptHashPattern.ReplaceAllString(s, redactedValue)
}
