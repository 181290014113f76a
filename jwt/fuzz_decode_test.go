package jwt

import (
	"testing"
)

// FuzzDecode exercises the structural decoder with arbitrary token
// strings. Goal: no panics; invalid inputs must be rejected with errors.
func FuzzDecode(f *testing.F) {
	m, err := NewManager(Config{Issuer: "fuzz-test"})
	if err != nil {
		f.Fatal(err)
	}

	valid, _, err := m.Sign(Symmetric{Secret: testSecret}, map[string]any{"role": "client"}, 60)
	if err != nil {
		f.Fatal(err)
	}

	f.Add(valid)
	f.Add("")
	f.Add("not.a.jwt")
	f.Add("eyJhbGciOiJIUzI1NiJ9.eyJqdGkiOiJ0ZXN0In0.invalid")
	f.Add("eyJhbGciOiJub25lIn0.eyJqdGkiOiJ0ZXN0In0.")

	f.Fuzz(func(t *testing.T, input string) {
		decoded, err := m.Decode(input)
		if err != nil {
			return
		}
		if decoded == nil {
			t.Fatal("Decode returned nil without error")
		}
		if decoded.Header == nil || decoded.Claims == nil {
			t.Fatal("Decode returned incomplete structure without error")
		}
	})
}
