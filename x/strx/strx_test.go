package strx

import "testing"

func TestCoalesce(t *testing.T) {
	if Coalesce("", "d") != "d" || Coalesce("s", "d") != "s" {
		t.Fatal("Coalesce")
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"Control Menu", 10, "Control Me"},
		{"Volume", 10, "Volume"},
		{"abc", 0, ""},
		{"abc", -1, ""},
	}
	for _, c := range cases {
		if got := Truncate(c.in, c.n); got != c.want {
			t.Fatalf("Truncate(%q, %d) = %q, want %q", c.in, c.n, got, c.want)
		}
	}
}
