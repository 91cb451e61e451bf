package date

import "testing"

func TestParsePeriod(t *testing.T) {
	cases := []struct {
		in   string
		want Period
		err  bool
	}{
		{in: "daily", want: Daily},
		{in: "day", want: Daily},
		{in: "Weekly", want: Weekly},
		{in: "month", want: Monthly},
		{in: "yearly", want: Yearly},
		{in: "quarterly", err: true},
		{in: "", err: true},
	}
	for _, tc := range cases {
		got, err := ParsePeriod(tc.in)
		if tc.err != (err != nil) {
			t.Errorf("ParsePeriod(%q): err = %v, want err = %v", tc.in, err, tc.err)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParsePeriod(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestPeriodString(t *testing.T) {
	for _, p := range []Period{Daily, Weekly, Monthly, Yearly} {
		if back, err := ParsePeriod(p.String()); err != nil || back != p {
			t.Errorf("ParsePeriod(%s) = %v, %v", p, back, err)
		}
	}
}

func TestRange(t *testing.T) {
	r := NewRange(MustParse("2022-01-01"), MustParse("2022-01-30"))
	if got := r.Days(); got != 29 {
		t.Errorf("Days() = %d, want 29", got)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if !r.Contains(MustParse("2022-01-30")) || r.Contains(MustParse("2022-01-31")) {
		t.Error("Contains boundary check failed")
	}

	same := NewRange(MustParse("2022-01-01"), MustParse("2022-01-01"))
	if err := same.Validate(); err == nil {
		t.Error("Validate() accepted an empty range")
	}
	inverted := NewRange(MustParse("2022-01-30"), MustParse("2022-01-01"))
	if err := inverted.Validate(); err == nil {
		t.Error("Validate() accepted an inverted range")
	}
}
