package daterange

import "testing"

func TestFilterByRange(t *testing.T) {
	t.Parallel()

	ds := []Record{
		{"date": "2025-01-31", "id": 1},
		{"date": "2025-02-01", "id": 2},
		{"timestamp": "2025-02-05T09:30:00Z", "id": 3},
		{"date": "2025-02-07", "id": 4},
		{"date": "2025-02-08", "id": 5},
		{"date": "not-a-date", "id": 6},
	}

	t.Run("week mode is a closed interval", func(t *testing.T) {
		t.Parallel()
		got := FilterByRange(ds, "2025-02-01", "2025-02-07", ModeWeek)
		if len(got) != 3 {
			t.Fatalf("expected 3 records, got %d: %v", len(got), got)
		}
		if got[0]["id"] != 2 || got[1]["id"] != 3 || got[2]["id"] != 4 {
			t.Fatalf("order not preserved: %v", got)
		}
	})

	t.Run("month mode admits one day past the end", func(t *testing.T) {
		t.Parallel()
		got := FilterByRange(ds, "2025-02-01", "2025-02-07", ModeMonth)
		if len(got) != 4 {
			t.Fatalf("expected 4 records, got %d: %v", len(got), got)
		}
		if got[3]["id"] != 5 {
			t.Fatalf("expected trailing-day record last, got %v", got)
		}
	})

	t.Run("unparseable record excluded regardless of range", func(t *testing.T) {
		t.Parallel()
		got := FilterByRange(ds, "2020-01-01", "2030-01-01", ModeMonth)
		for _, rec := range got {
			if rec["id"] == 6 {
				t.Fatalf("unparseable record leaked through: %v", got)
			}
		}
	})

	t.Run("unparseable range yields empty result", func(t *testing.T) {
		t.Parallel()
		if got := FilterByRange(ds, "junk", "2025-02-07", ModeWeek); len(got) != 0 {
			t.Fatalf("expected empty result, got %v", got)
		}
	})
}

func TestHasEnoughDataPoints(t *testing.T) {
	t.Parallel()

	// n distinct dates in February 2025, with every date duplicated once to
	// prove the count is by distinct date, not record count.
	distinct := func(n int) []Record {
		var out []Record
		for d := 1; d <= n; d++ {
			date := "2025-02-0" + string(rune('0'+d))
			if d >= 10 {
				date = "2025-02-1" + string(rune('0'+d-10))
			}
			out = append(out, Record{"date": date}, Record{"date": date})
		}
		return out
	}

	tests := []struct {
		name     string
		n        int
		mode     Mode
		dataType DataType
		want     bool
	}{
		{"feed week below threshold", 2, ModeWeek, DataFeed, false},
		{"feed week at threshold", 3, ModeWeek, DataFeed, true},
		{"feed month below threshold", 6, ModeMonth, DataFeed, false},
		{"feed month at threshold", 7, ModeMonth, DataFeed, true},
		{"stool month six dates insufficient", 6, ModeMonth, DataStool, false},
		{"stool month seven dates sufficient", 7, ModeMonth, DataStool, true},
		{"stool week threshold fixed at seven", 6, ModeWeek, DataStool, false},
		{"growth threshold fixed regardless of mode", 3, ModeMonth, DataGrowth, true},
		{"growth week at threshold", 3, ModeWeek, DataGrowth, true},
		{"growth below threshold", 2, ModeWeek, DataGrowth, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HasEnoughDataPoints(distinct(tc.n), tc.mode, tc.dataType); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}

	t.Run("unparseable dates do not count", func(t *testing.T) {
		t.Parallel()
		ds := append(distinct(2), Record{"date": "bad"}, Record{"date": "worse"})
		if HasEnoughDataPoints(ds, ModeWeek, DataFeed) {
			t.Fatal("invalid dates counted toward threshold")
		}
	})
}
