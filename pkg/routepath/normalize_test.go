package routepath

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/", "/"},
		{"/about", "/about"},
		{"/about/", "/about"},
		{"/users/42/", "/users/42"},
		{"", ""},
		{"/a//", "/a/"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	paths := []string{"/", "/about/", "/users/42/posts/hello/", "", "/a//"}
	for _, p := range paths {
		once := Normalize(p)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", p, once, twice)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("/users/42"); err != nil {
		t.Errorf("Validate(/users/42) = %v, want nil", err)
	}
	if err := Validate(`/a\b`); err != ErrBackslashInPath {
		t.Errorf("backslash path: got %v, want ErrBackslashInPath", err)
	}
	if err := Validate("/a\x00b"); err != ErrNullByteInPath {
		t.Errorf("null byte path: got %v, want ErrNullByteInPath", err)
	}
	if err := Validate("/a%00b"); err != ErrNullByteInPath {
		t.Errorf("encoded null byte path: got %v, want ErrNullByteInPath", err)
	}
}
