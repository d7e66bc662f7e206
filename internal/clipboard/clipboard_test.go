package clipboard

import (
	"errors"
	"testing"
)

func TestFunc_ReadText(t *testing.T) {
	var r Reader = Func(func() (string, error) { return "http://example.com", nil })

	text, err := r.ReadText()
	if err != nil {
		t.Fatalf("ReadText failed: %v", err)
	}
	if text != "http://example.com" {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestFunc_ReadTextError(t *testing.T) {
	denied := errors.New("permission denied")
	var r Reader = Func(func() (string, error) { return "", denied })

	if _, err := r.ReadText(); !errors.Is(err, denied) {
		t.Errorf("expected denied error, got %v", err)
	}
}
