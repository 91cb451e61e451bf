package date

import "testing"

func TestRange_Days(t *testing.T) {
	testCases := []struct {
		from, to string
		want     int
	}{
		{"2022-11-08", "2022-11-08", 0},
		{"2022-11-08", "2022-11-10", 2},
		{"2022-11-08", "2022-12-07", 29},
		{"2022-11-08", "2022-12-08", 30},
		{"2024-02-01", "2024-03-01", 29}, // leap february
	}
	for _, tc := range testCases {
		r := NewRange(MustParse(tc.from), MustParse(tc.to))
		if got := r.Days(); got != tc.want {
			t.Errorf("Days(%s) = %d, want %d", r, got, tc.want)
		}
	}
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(MustParse("2022-11-08"), MustParse("2022-11-10"))
	testCases := []struct {
		on   string
		want bool
	}{
		{"2022-11-07", false},
		{"2022-11-08", true},
		{"2022-11-09", true},
		{"2022-11-10", true},
		{"2022-11-11", false},
	}
	for _, tc := range testCases {
		if got := r.Contains(MustParse(tc.on)); got != tc.want {
			t.Errorf("Contains(%s) = %v, want %v", tc.on, got, tc.want)
		}
	}
}

func TestRange_Validate(t *testing.T) {
	valid := NewRange(MustParse("2022-11-08"), MustParse("2022-11-10"))
	if err := valid.Validate(); err != nil {
		t.Errorf("valid range rejected: %v", err)
	}
	same := NewRange(MustParse("2022-11-08"), MustParse("2022-11-08"))
	if err := same.Validate(); err == nil {
		t.Error("empty range accepted")
	}
	reversed := NewRange(MustParse("2022-11-10"), MustParse("2022-11-08"))
	if err := reversed.Validate(); err == nil {
		t.Error("reversed range accepted")
	}
}
