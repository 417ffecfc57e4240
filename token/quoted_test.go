package token

import "testing"

func TestQuoteUnquote(t *testing.T) {
	tests := []string{
		"",
		"hello, world",
		`with "quotes"`,
		`back\slash`,
		"line\nbreak",
		"tab\tand unicode ∞ ✓",
		`'single'`,
	}
	for _, v := range tests {
		q := Quote(v)
		got, err := Unquote(q)
		if err != nil {
			t.Errorf("Unquote(Quote(%q)): %v", v, err)
			continue
		}
		if got != v {
			t.Errorf("Unquote(Quote(%q)) = %q", v, got)
		}
	}
}

func TestUnquoteSingle(t *testing.T) {
	got, err := Unquote(`'it\'s'`)
	if err != nil {
		t.Fatal(err)
	}
	if want := "it's"; got != want {
		t.Errorf("Unquote = %q, want %q", got, want)
	}
}

func TestUnquoteErr(t *testing.T) {
	for _, v := range []string{``, `"abc`, `abc"`, `"a"b`} {
		if _, err := Unquote(v); err == nil {
			t.Errorf("Unquote(%q): expected error", v)
		}
	}
}

func TestIsIdent(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"key", true},
		{"_key9", true},
		{"clé", true},
		{"", false},
		{"9key", false},
		{"a-b", false},
		{"a b", false},
	}
	for _, tt := range tests {
		if got := IsIdent(tt.in); got != tt.want {
			t.Errorf("IsIdent(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
