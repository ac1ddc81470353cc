package errors

import (
	stderrors "errors"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(New("boom"), ExitSystem),
			want: "boom",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	err := NewUserError(ErrUnknownTarget, "run: opensync targets")

	if !stderrors.Is(err, ErrUnknownTarget) {
		t.Error("errors.Is failed to find ErrUnknownTarget through ExitError")
	}

	var exitErr *ExitError
	if !stderrors.As(err, &exitErr) {
		t.Fatal("errors.As failed to extract ExitError")
	}
	if exitErr.Code != ExitUser {
		t.Errorf("Code = %d, want %d", exitErr.Code, ExitUser)
	}
	if exitErr.Suggestion != "run: opensync targets" {
		t.Errorf("Suggestion = %q", exitErr.Suggestion)
	}
}

func TestWrap_PreservesSentinel(t *testing.T) {
	err := Wrap(ErrParse, "reading target file")
	if !Is(err, ErrParse) {
		t.Error("wrapped sentinel no longer matches with Is")
	}
}
