package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNewFromRegistry(t *testing.T) {
	err := New("E001")
	if err.Code != "E001" {
		t.Errorf("Code = %q", err.Code)
	}
	if err.Category != CategoryConfig {
		t.Errorf("Category = %q", err.Category)
	}
	if !strings.Contains(err.Error(), "E001") {
		t.Errorf("Error() = %q, want code prefix", err.Error())
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E999")
	if err.Message != "Unknown error" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := New("E020").Wrap(cause)
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestFromErrorPassthrough(t *testing.T) {
	orig := New("E040")
	if got := FromError(orig, "E041"); got != orig {
		t.Error("FromError should pass StrataError through unchanged")
	}
	if FromError(nil, "E041") != nil {
		t.Error("FromError(nil) should be nil")
	}
}

func TestFormatIncludesSuggestion(t *testing.T) {
	DisableColors()
	out := New("E002").WithSuggestion("check the JSON syntax").Format()
	if !strings.Contains(out, "hint: check the JSON syntax") {
		t.Errorf("Format() missing suggestion:\n%s", out)
	}
	if !strings.Contains(out, "E002") {
		t.Errorf("Format() missing code:\n%s", out)
	}
}

func TestNewfFormatsMessage(t *testing.T) {
	err := Newf(CategoryCLI, "missing tool %q", "go")
	if err.Code != "" {
		t.Errorf("Code = %q, want empty", err.Code)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q", err.Category)
	}
	if err.Error() != `missing tool "go"` {
		t.Errorf("Error() = %q", err.Error())
	}
}
