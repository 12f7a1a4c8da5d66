package debenture_test

import (
	"encoding/json"
	"testing"

	"debenture/internal/debenture"
	"debenture/internal/testutil"
)

func TestFrequencyFromCode(t *testing.T) {
	periods := map[debenture.Frequency]int64{
		debenture.Annually:   1,
		debenture.Biannually: 2,
		debenture.Quarterly:  4,
		debenture.Monthly:    12,
		debenture.Weekly:     52,
		debenture.Daily:      365,
	}

	for _, f := range debenture.Frequencies() {
		got, err := debenture.FrequencyFromCode(f.Code())
		testutil.AssertNoError(t, err)
		if got != f {
			t.Errorf("code %d: expected %s, got %s", f.Code(), f, got)
		}
		if got.PeriodsPerYear() != periods[f] {
			t.Errorf("%s: expected %d periods, got %d", f, periods[f], got.PeriodsPerYear())
		}
	}

	for _, code := range []uint32{6, 99, 1 << 31} {
		_, err := debenture.FrequencyFromCode(code)
		testutil.AssertAppError(t, err, "INVALID_FREQUENCY_CODE")
	}
}

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		in   string
		want debenture.Frequency
	}{
		{"annually", debenture.Annually},
		{"Quarterly", debenture.Quarterly},
		{" daily ", debenture.Daily},
		{"3", debenture.Monthly},
	}
	for _, tt := range tests {
		got, err := debenture.ParseFrequency(tt.in)
		testutil.AssertNoError(t, err)
		if got != tt.want {
			t.Errorf("ParseFrequency(%q): expected %s, got %s", tt.in, tt.want, got)
		}
	}

	for _, in := range []string{"hourly", "6", "-1"} {
		_, err := debenture.ParseFrequency(in)
		testutil.AssertAppError(t, err, "INVALID_FREQUENCY_CODE")
	}
}

func TestFrequency_Text(t *testing.T) {
	b, err := debenture.Weekly.MarshalText()
	testutil.AssertNoError(t, err)
	if string(b) != "weekly" {
		t.Errorf("expected weekly, got %s", b)
	}

	var f debenture.Frequency
	testutil.AssertNoError(t, f.UnmarshalText([]byte("biannually")))
	if f != debenture.Biannually {
		t.Errorf("expected biannually, got %s", f)
	}

	if _, err := debenture.Frequency(42).MarshalText(); err == nil {
		t.Error("expected error marshalling an unknown frequency")
	}
}

func TestFrequency_PeriodsPerYearUnknown(t *testing.T) {
	if got := debenture.Frequency(9).PeriodsPerYear(); got != 0 {
		t.Errorf("expected 0 periods for an unknown frequency, got %d", got)
	}
}

func TestFrequency_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want debenture.Frequency
	}{
		{`0`, debenture.Annually},
		{`3`, debenture.Monthly},
		{`"weekly"`, debenture.Weekly},
		{`"5"`, debenture.Daily},
	}
	for _, tt := range tests {
		var f debenture.Frequency
		testutil.AssertNoError(t, json.Unmarshal([]byte(tt.in), &f))
		if f != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.in, tt.want, f)
		}
	}

	for _, in := range []string{`99`, `-1`, `1.5`, `"hourly"`, `true`} {
		var f debenture.Frequency
		err := json.Unmarshal([]byte(in), &f)
		testutil.AssertAppError(t, err, "INVALID_FREQUENCY_CODE")
	}
}
