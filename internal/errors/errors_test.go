// Package apperrors provides tests for application error types.
package apperrors

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 42, "--naive-limit"),
			expected: "invalid value 42 for flag --naive-limit",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestWrapConfigError(t *testing.T) {
	t.Parallel()
	cause := NewValidationError("amount", "must be an integer, got %q", "2.5")
	err := WrapConfigError(cause, "invalid -%s", "amount")

	want := `invalid -amount: validation error for "amount": must be an integer, got "2.5"`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	var configErr ConfigError
	if !errors.As(err, &configErr) {
		t.Error("expected error to be ConfigError type")
	}
	if !IsInvalidArgument(err) {
		t.Error("wrapped validation error should still be an invalid argument")
	}
	if IsInvalidArgument(NewConfigError("plain")) {
		t.Error("a ConfigError without cause is not an invalid argument")
	}
}

func TestCalculationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		cause       error
		expectedMsg string
		checkIs     error
		checkUnwrap bool
	}{
		{
			name:        "Error returns cause message",
			cause:       errors.New("table allocation failed"),
			expectedMsg: "table allocation failed",
		},
		{
			name:        "Unwrap returns cause",
			cause:       errors.New("original error"),
			expectedMsg: "original error",
			checkUnwrap: true,
		},
		{
			name:        "errors.Is works with wrapped error",
			cause:       context.Canceled,
			expectedMsg: "context canceled",
			checkIs:     context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := CalculationError{Cause: tt.cause}

			if err.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, err.Error())
			}

			if tt.checkUnwrap && err.Unwrap() != tt.cause {
				t.Error("Unwrap should return the original cause")
			}

			if tt.checkIs != nil && !errors.Is(err, tt.checkIs) {
				t.Errorf("errors.Is should find %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestTimeoutError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         TimeoutError
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns formatted message",
			err:      TimeoutError{Operation: "Naive Recursion", Limit: 30 * time.Second},
			expected: `operation "Naive Recursion" timed out after 30s`,
		},
		{
			name:     "Error with subsecond limit",
			err:      TimeoutError{Operation: "Bottom-Up DP", Limit: 500 * time.Millisecond},
			expected: `operation "Bottom-Up DP" timed out after 500ms`,
		},
		{
			name:        "errors.As works with TimeoutError",
			err:         TimeoutError{Operation: "Greedy", Limit: 10 * time.Second},
			expected:    `operation "Greedy" timed out after 10s`,
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var err error = tt.err
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
			if !IsContextError(err) {
				t.Error("TimeoutError should be reported as a context error")
			}
			if tt.checkTypeAs {
				var timeoutErr TimeoutError
				if !errors.As(err, &timeoutErr) {
					t.Error("expected error to be TimeoutError type")
				}
				if timeoutErr.Operation != tt.err.Operation {
					t.Errorf("expected Operation %q, got %q", tt.err.Operation, timeoutErr.Operation)
				}
				if timeoutErr.Limit != tt.err.Limit {
					t.Errorf("expected Limit %v, got %v", tt.err.Limit, timeoutErr.Limit)
				}
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns formatted message",
			err:      ValidationError{Field: "amount", Message: "must be non-negative"},
			expected: `validation error for "amount": must be non-negative`,
		},
		{
			name:     "NewValidationError formats the message",
			err:      NewValidationError("coins", "value %d at position %d is not positive", 0, 2),
			expected: `validation error for "coins": value 0 at position 2 is not positive`,
		},
		{
			name:        "errors.As works with ValidationError",
			err:         ValidationError{Field: "coins", Message: "must not be empty"},
			expected:    `validation error for "coins": must not be empty`,
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if !errors.Is(tt.err, ErrInvalidArgument) {
				t.Error("ValidationError should unwrap to ErrInvalidArgument")
			}
			if !IsInvalidArgument(tt.err) {
				t.Error("IsInvalidArgument should report true")
			}
			if tt.checkTypeAs {
				var validationErr ValidationError
				if !errors.As(tt.err, &validationErr) {
					t.Error("expected error to be ValidationError type")
				}
				if validationErr.Field != "coins" {
					t.Errorf("expected Field %q, got %q", "coins", validationErr.Field)
				}
			}
		})
	}
}

func TestLimitError(t *testing.T) {
	t.Parallel()
	err := LimitError{Operation: "Naive Recursion", Amount: 500, Limit: 40}
	want := "Naive Recursion skipped: amount 500 exceeds limit 40"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if IsInvalidArgument(err) {
		t.Error("LimitError must not be reported as invalid input")
	}
	if IsContextError(err) {
		t.Error("LimitError must not be reported as a context error")
	}
}

func TestNewErrorTypes_ErrorsAsWithWrapping(t *testing.T) {
	t.Parallel()

	t.Run("TimeoutError wrapped in CalculationError", func(t *testing.T) {
		t.Parallel()
		inner := TimeoutError{Operation: "Naive Recursion", Limit: 5 * time.Second}
		err := CalculationError{Cause: inner}

		var timeoutErr TimeoutError
		if !errors.As(err, &timeoutErr) {
			t.Error("errors.As should find TimeoutError through CalculationError")
		}
	})

	t.Run("ValidationError wrapped with WrapError", func(t *testing.T) {
		t.Parallel()
		inner := ValidationError{Field: "amount", Message: "not an integer"}
		err := WrapError(inner, "config check failed")

		var validationErr ValidationError
		if !errors.As(err, &validationErr) {
			t.Error("errors.As should find ValidationError through WrapError")
		}
		if !errors.Is(err, ErrInvalidArgument) {
			t.Error("errors.Is should find ErrInvalidArgument through WrapError")
		}
	})

	t.Run("LimitError wrapped in CalculationError", func(t *testing.T) {
		t.Parallel()
		inner := LimitError{Operation: "Naive Recursion", Amount: 90, Limit: 60}
		err := CalculationError{Cause: inner}

		var limitErr LimitError
		if !errors.As(err, &limitErr) {
			t.Error("errors.As should find LimitError through CalculationError")
		}
	})
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		original    error
		format      string
		args        []any
		expectedMsg string
		expectNil   bool
		checkIs     error
	}{
		{
			name:        "wraps error with context",
			original:    errors.New("bad coin list"),
			format:      "failed to parse flags",
			expectedMsg: "failed to parse flags: bad coin list",
		},
		{
			name:        "preserves error chain",
			original:    context.DeadlineExceeded,
			format:      "operation timed out",
			expectedMsg: "operation timed out: context deadline exceeded",
			checkIs:     context.DeadlineExceeded,
		},
		{
			name:      "returns nil for nil error",
			original:  nil,
			format:    "some context",
			expectNil: true,
		},
		{
			name:        "supports format arguments",
			original:    errors.New("infeasible"),
			format:      "amount %d with %d coins",
			args:        []any{23, 3},
			expectedMsg: "amount 23 with 3 coins: infeasible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := WrapError(tt.original, tt.format, tt.args...)

			if tt.expectNil {
				if wrapped != nil {
					t.Error("WrapError(nil, ...) should return nil")
				}
				return
			}

			if wrapped == nil {
				t.Fatal("wrapped error should not be nil")
			}

			if wrapped.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, wrapped.Error())
			}

			if tt.checkIs != nil && !errors.Is(wrapped, tt.checkIs) {
				t.Errorf("wrapped error should preserve %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"context.Canceled", context.Canceled, true},
		{"context.DeadlineExceeded", context.DeadlineExceeded, true},
		{"wrapped context.Canceled", WrapError(context.Canceled, "operation canceled"), true},
		{"regular error", errors.New("some error"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := IsContextError(tt.err)
			if result != tt.expected {
				t.Errorf("IsContextError(%v) = %v, expected %v", tt.err, result, tt.expected)
			}
		})
	}
}

type testColors struct{}

func (testColors) Red() string    { return "<r>" }
func (testColors) Yellow() string { return "<y>" }
func (testColors) Reset() string  { return "</>" }

func TestHandleCalculationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		duration time.Duration
		colors   ColorProvider
		wantCode int
		wantOut  string
	}{
		{"nil error", nil, 0, nil, ExitSuccess, ""},
		{"timeout error", TimeoutError{Operation: "Naive Recursion", Limit: time.Second}, time.Second, nil, ExitErrorTimeout, "Timeout"},
		{"deadline exceeded", context.DeadlineExceeded, 0, nil, ExitErrorTimeout, "Timeout"},
		{"canceled", context.Canceled, 0, nil, ExitErrorCanceled, "Canceled"},
		{"invalid argument", ValidationError{Field: "amount", Message: "must be non-negative"}, 0, nil, ExitErrorConfig, "Invalid input"},
		{"amount over ceiling", LimitError{Operation: "Bottom-Up DP", Amount: 20_000_000, Limit: 10_000_000}, 0, nil, ExitErrorConfig, "Status: Refused. Bottom-Up DP skipped"},
		{"wrapped amount over ceiling", CalculationError{Cause: LimitError{Operation: "Bottom-Up DP", Limit: 1}}, 0, nil, ExitErrorConfig, "Refused"},
		{"generic", errors.New("boom"), 0, testColors{}, ExitErrorGeneric, "<r>Status: Failure. Unexpected error: boom</>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			code := HandleCalculationError(tt.err, tt.duration, &buf, tt.colors)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if tt.wantOut == "" && buf.Len() != 0 {
				t.Errorf("expected no output, got %q", buf.String())
			}
			if !strings.Contains(buf.String(), tt.wantOut) {
				t.Errorf("output %q should contain %q", buf.String(), tt.wantOut)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":       ExitSuccess,
		"ExitErrorGeneric":  ExitErrorGeneric,
		"ExitErrorTimeout":  ExitErrorTimeout,
		"ExitErrorMismatch": ExitErrorMismatch,
		"ExitErrorConfig":   ExitErrorConfig,
		"ExitErrorCanceled": ExitErrorCanceled,
	}

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess should be 0, got %d", ExitSuccess)
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled should be 130 (SIGINT convention), got %d", ExitErrorCanceled)
	}

	seen := make(map[int]string)
	for name, code := range codes {
		if existing, ok := seen[code]; ok {
			t.Errorf("duplicate exit code %d: %s and %s", code, existing, name)
		}
		seen[code] = name
	}
}
