package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate performs comprehensive validation of the configuration.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Version < 1 || c.Version > Version {
		errs = append(errs, ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (current: %d)", c.Version, Version),
		})
	}

	errs = append(errs, validateScan(&c.Scan)...)
	errs = append(errs, validateEvents(&c.Events)...)
	errs = append(errs, validateWindow(&c.Window)...)
	errs = append(errs, validateStore(&c.Store)...)
	errs = append(errs, validateWatch(&c.Watch)...)
	errs = append(errs, validateTheme(&c.Theme)...)
	errs = append(errs, validateLogging(&c.Logging)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateScan(s *ScanConfig) ValidationErrors {
	var errs ValidationErrors
	if s.TopN < 1 {
		errs = append(errs, ValidationError{
			Field:   "scan.top_n",
			Message: fmt.Sprintf("must be at least 1, got %d", s.TopN),
		})
	}
	if s.BatchEntries < 1 {
		errs = append(errs, ValidationError{
			Field:   "scan.batch_entries",
			Message: fmt.Sprintf("must be at least 1, got %d", s.BatchEntries),
		})
	}
	if s.ReportIntervalMs < 1 {
		errs = append(errs, ValidationError{
			Field:   "scan.report_interval_ms",
			Message: fmt.Sprintf("must be at least 1, got %d", s.ReportIntervalMs),
		})
	}
	return errs
}

func validateEvents(e *EventsConfig) ValidationErrors {
	var errs ValidationErrors
	if e.QueueCapacity < 0 {
		errs = append(errs, ValidationError{
			Field:   "events.queue_capacity",
			Message: fmt.Sprintf("must not be negative, got %d", e.QueueCapacity),
		})
	}
	return errs
}

func validateWindow(w *WindowConfig) ValidationErrors {
	var errs ValidationErrors
	if w.Width < 1 || w.Height < 1 {
		errs = append(errs, ValidationError{
			Field:   "window",
			Message: fmt.Sprintf("dimensions must be positive, got %dx%d", w.Width, w.Height),
		})
	}
	return errs
}

func validateStore(s *StoreConfig) ValidationErrors {
	var errs ValidationErrors
	if s.Enabled && s.Path == "" {
		errs = append(errs, ValidationError{
			Field:   "store.path",
			Message: "required when store is enabled",
		})
	}
	return errs
}

func validateWatch(w *WatchConfig) ValidationErrors {
	var errs ValidationErrors
	if w.DebounceMs < 0 {
		errs = append(errs, ValidationError{
			Field:   "watch.debounce_ms",
			Message: fmt.Sprintf("must not be negative, got %d", w.DebounceMs),
		})
	}
	return errs
}

func validateTheme(t *ThemeConfig) ValidationErrors {
	var errs ValidationErrors
	switch t.Mode {
	case "auto", "light", "dark":
	default:
		errs = append(errs, ValidationError{
			Field:   "theme.mode",
			Message: fmt.Sprintf("must be auto, light or dark, got %q", t.Mode),
		})
	}
	return errs
}

func validateLogging(l *LoggingConfig) ValidationErrors {
	var errs ValidationErrors
	switch l.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("unknown level %q", l.Level),
		})
	}
	switch l.Format {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("must be text or json, got %q", l.Format),
		})
	}
	switch l.Output {
	case "stdout", "stderr", "file", "both":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.output",
			Message: fmt.Sprintf("unknown output %q", l.Output),
		})
	}
	if (l.Output == "file" || l.Output == "both") && l.FilePath == "" {
		errs = append(errs, ValidationError{
			Field:   "logging.file_path",
			Message: "required when output includes file",
		})
	}
	return errs
}
