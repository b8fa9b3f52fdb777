package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindWrongType,
				Path:   []string{"10", "11", "13"},
				Detail: "cannot convert",
			},
			contains: []string{"[decode]", "wrong_type", "10/11/13", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseParse,
				Kind:  KindTruncated,
			},
			contains: []string{"[parse]", "truncated"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindInvalidData,
				Detail: "bad hex",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[load]", "invalid_data", "bad hex", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseParse,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not see through the wrapper")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindWrongType,
		Path:  []string{"6"},
	}
	if !errors.Is(err, &Error{Phase: PhaseDecode, Kind: KindWrongType}) {
		t.Error("errors with matching phase and kind should match")
	}
	if errors.Is(err, &Error{Phase: PhaseParse, Kind: KindWrongType}) {
		t.Error("errors with different phase should not match")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseProfile, KindNotFound).
		Path("root", "6").
		Detail("context %q missing", "pairing").
		Build()
	if err.Phase != PhaseProfile || err.Kind != KindNotFound {
		t.Errorf("built %+v", err)
	}
	if err.Detail != `context "pairing" missing` {
		t.Errorf("Detail = %q", err.Detail)
	}
	if len(err.Path) != 2 {
		t.Errorf("Path = %v", err.Path)
	}
}

func TestConstructors(t *testing.T) {
	if e := WrongType(PhaseDecode, []string{"6"}, "uint", 3); !strings.Contains(e.Error(), "length 3") {
		t.Errorf("WrongType: %v", e)
	}
	if e := NotFound(PhaseProfile, "context", "setup"); !strings.Contains(e.Error(), `"setup"`) {
		t.Errorf("NotFound: %v", e)
	}
	cause := errors.New("short read")
	if e := ParseFailed("stream", cause); !errors.Is(e, cause) {
		t.Errorf("ParseFailed cause lost: %v", e)
	}
}
