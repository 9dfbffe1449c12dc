package errcode

import (
	"errors"
	"testing"
)

func TestOf(t *testing.T) {
	cause := errors.New("nack")
	cases := []struct {
		err  error
		want Code
	}{
		{nil, OK},
		{DisplayNotFound, DisplayNotFound},
		{&E{C: StorageUnavailable, Op: "storage.load"}, StorageUnavailable},
		{Wrap(DisplayNotFound, "oled.probe", cause), DisplayNotFound},
		{cause, Error},
	}
	for _, c := range cases {
		if got := Of(c.err); got != c.want {
			t.Fatalf("Of(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestWrapUnwrapAndMessage(t *testing.T) {
	cause := errors.New("i2c nack")
	err := Wrap(DisplayNotFound, "oled.probe", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is did not find the cause in %v", err)
	}
	if got, want := err.Error(), "oled.probe: display_not_found: i2c nack"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if Wrap(Error, "x", nil) != nil {
		t.Fatal("Wrap(nil) should be nil")
	}
}
