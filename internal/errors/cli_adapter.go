package errors

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// CLIErrorAdapter handles error presentation and exit code determination for CLI applications.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	se, ok := As(err)
	if !ok {
		return 1
	}
	switch se.Category {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryNavigation:
		return 3
	case CategorySubstitution:
		return 4
	case CategoryConfig:
		return 7
	case CategoryGit:
		return 8 // External system error
	case CategoryFileSystem:
		return 11
	case CategoryInternal:
		return 10
	default:
		return 1
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	se, ok := As(err)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}
	if a.verbose {
		return se.Error() + formatContext(se.Context)
	}
	switch se.Category {
	case CategoryConfig, CategoryValidation:
		return se.Message + formatContext(se.Context)
	default:
		return fmt.Sprintf("%s: %s%s", se.Category, se.Message, formatContext(se.Context))
	}
}

// Report logs the error and returns the exit code the process should use.
func (a *CLIErrorAdapter) Report(err error) int {
	if err == nil {
		return 0
	}
	se, ok := As(err)
	if !ok {
		a.logger.Error("Unclassified error", "error", err)
		return a.ExitCodeFor(err)
	}
	attrs := []slog.Attr{slog.String("category", string(se.Category))}
	for _, k := range sortedKeys(se.Context) {
		attrs = append(attrs, slog.Any(k, se.Context[k]))
	}
	if se.Cause != nil {
		attrs = append(attrs, slog.String("cause", se.Cause.Error()))
	}
	a.logger.LogAttrs(context.Background(), levelForSeverity(se.Severity), se.Message, attrs...)
	return a.ExitCodeFor(err)
}

func levelForSeverity(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func formatContext(ctx ContextFields) string {
	if len(ctx) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ctx))
	for _, k := range sortedKeys(ctx) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, ctx[k]))
	}
	return " [" + strings.Join(parts, " ") + "]"
}

func sortedKeys(ctx ContextFields) []string {
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
