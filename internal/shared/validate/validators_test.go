package validate

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"user@example.com", true},
		{"a@b.co", true},
		{"first.last@sub.domain.org", true},
		{"no-at-sign", false},
		{"two@@example.com", false},
		{"user@nodot", false},
		{"user @example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Email(tt.input)
			if (got == "") != tt.valid {
				t.Errorf("Email(%q) = %q, want valid=%v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	if msg := Password("abc"); msg == "" {
		t.Error("Password(short) should fail")
	}
	if msg := Password("abcdef"); msg != "" {
		t.Errorf("Password(6 chars) = %q, want valid", msg)
	}
	if msg := PasswordMin(10)("abcdefghi"); msg == "" {
		t.Error("PasswordMin(10) should reject 9 chars")
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name  string
		input any
		min   float64
		valid bool
	}{
		{"string number", "3.50", 0, true},
		{"int", 5, 0, true},
		{"below min", "-1", 0, false},
		{"at min", "0", 0, true},
		{"garbage", "abc", 0, false},
		{"nil", nil, 0, false},
		{"padded string", " 42 ", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Number(tt.min)(tt.input)
			if (got == "") != tt.valid {
				t.Errorf("Number(%v)(%v) = %q, want valid=%v", tt.min, tt.input, got, tt.valid)
			}
		})
	}
}

func TestRequired(t *testing.T) {
	tests := []struct {
		name  string
		input any
		valid bool
	}{
		{"string", "hello", true},
		{"empty", "", false},
		{"whitespace", "   ", false},
		{"nil", nil, false},
		{"number", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Required(tt.input)
			if (got == "") != tt.valid {
				t.Errorf("Required(%v) = %q, want valid=%v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestForm(t *testing.T) {
	schema := map[string]Validator{
		"email":    Email,
		"password": Password,
	}

	t.Run("blur validates single field", func(t *testing.T) {
		f := NewForm(map[string]any{"email": "bad"}, schema, nil)
		f.Blur("email")

		if !f.Touched("email") {
			t.Error("email should be touched after blur")
		}
		if f.Error("email") == "" {
			t.Error("expected error for invalid email")
		}
		if f.Touched("password") {
			t.Error("password should not be touched")
		}
	})

	t.Run("change re-validates touched field", func(t *testing.T) {
		f := NewForm(map[string]any{"email": "bad"}, schema, nil)
		f.Blur("email")
		f.Change("email", "user@example.com")

		if msg := f.Error("email"); msg != "" {
			t.Errorf("error should clear after fix, got %q", msg)
		}
	})

	t.Run("change before blur does not validate", func(t *testing.T) {
		f := NewForm(nil, schema, nil)
		f.Change("email", "bad")

		if f.Error("email") != "" {
			t.Error("untouched field should not carry an error")
		}
	})

	t.Run("submit blocks on invalid form", func(t *testing.T) {
		called := false
		f := NewForm(map[string]any{"email": "bad", "password": "short"}, schema, func(map[string]any) error {
			called = true
			return nil
		})

		if err := f.Submit(); err != nil {
			t.Fatalf("Submit() error: %v", err)
		}
		if called {
			t.Error("submit callback should not run for invalid form")
		}
		if f.IsValid() {
			t.Error("form should be invalid")
		}
		if !f.Touched("password") {
			t.Error("submit should touch every schema field")
		}
	})

	t.Run("submit runs callback when valid", func(t *testing.T) {
		var got map[string]any
		f := NewForm(map[string]any{"email": "user@example.com", "password": "secret1"}, schema, func(values map[string]any) error {
			got = values
			return nil
		})

		if err := f.Submit(); err != nil {
			t.Fatalf("Submit() error: %v", err)
		}
		if got == nil {
			t.Fatal("submit callback did not run")
		}
		if got["email"] != "user@example.com" {
			t.Errorf("callback values = %v", got)
		}
		if !f.IsValid() {
			t.Error("form should be valid")
		}
	})
}
