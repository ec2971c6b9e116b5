package forecast

import (
	"testing"
	"time"

	"github.com/ctrln3rd/lunara-watch/internal/types"
)

func testDataset() *types.ForecastDataset {
	base := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	var hourly []types.HourlyPoint
	for i := 0; i < 48; i++ {
		hourly = append(hourly, types.HourlyPoint{
			Timestamp:   base.Add(time.Duration(i) * time.Hour),
			Temperature: 15 + float64(i%12),
		})
	}

	var daily []types.DailyPoint
	for i := 0; i < 7; i++ {
		daily = append(daily, types.DailyPoint{
			Date:           base.AddDate(0, 0, i),
			TemperatureMin: 10,
			TemperatureMax: 25,
		})
	}

	return &types.ForecastDataset{Hourly: hourly, Daily: daily}
}

func TestFilterInclusiveBounds(t *testing.T) {
	ds := testDataset()
	iv := types.Interval{
		Start: time.Date(2025, 6, 11, 6, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC),
	}

	got := Filter(ds, iv, types.GranularityHourly)

	// 06:00 through 09:00 inclusive is four points.
	if got.Count != 4 {
		t.Fatalf("Count = %d, expected 4", got.Count)
	}
	if got.Count != len(got.Points) {
		t.Errorf("Count = %d but len(Points) = %d", got.Count, len(got.Points))
	}
	for i, p := range got.Points {
		if !iv.Contains(p.Time) {
			t.Errorf("point %d at %v outside interval", i, p.Time)
		}
		if i > 0 && p.Time.Before(got.Points[i-1].Time) {
			t.Errorf("point %d at %v out of order", i, p.Time)
		}
	}
}

func TestFilterGranularity(t *testing.T) {
	ds := testDataset()
	iv := types.Interval{
		Start: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
	}

	t.Run("hourly only", func(t *testing.T) {
		got := Filter(ds, iv, types.GranularityHourly)
		for i, p := range got.Points {
			if p.Daily {
				t.Errorf("point %d is daily, expected hourly only", i)
			}
		}
		if got.Count != 25 {
			t.Errorf("Count = %d, expected 25", got.Count)
		}
	})

	t.Run("daily only", func(t *testing.T) {
		got := Filter(ds, iv, types.GranularityDaily)
		if got.Count != 2 {
			t.Fatalf("Count = %d, expected 2", got.Count)
		}
		for i, p := range got.Points {
			if !p.Daily {
				t.Errorf("point %d is hourly, expected daily only", i)
			}
		}
	})

	t.Run("all is hourly then daily", func(t *testing.T) {
		got := Filter(ds, iv, types.GranularityAll)
		if got.Count != 27 {
			t.Fatalf("Count = %d, expected 27", got.Count)
		}
		sawDaily := false
		for i, p := range got.Points {
			if p.Daily {
				sawDaily = true
			} else if sawDaily {
				t.Errorf("point %d is hourly after a daily point", i)
			}
		}
	})
}

func TestFilterOneSided(t *testing.T) {
	ds := testDataset()

	t.Run("open start", func(t *testing.T) {
		iv := types.Interval{End: time.Date(2025, 6, 11, 2, 0, 0, 0, time.UTC)}
		got := Filter(ds, iv, types.GranularityHourly)
		if got.Count != 3 {
			t.Errorf("Count = %d, expected 3", got.Count)
		}
	})

	t.Run("open end", func(t *testing.T) {
		iv := types.Interval{Start: time.Date(2025, 6, 12, 12, 0, 0, 0, time.UTC)}
		got := Filter(ds, iv, types.GranularityHourly)
		if got.Count != 12 {
			t.Errorf("Count = %d, expected 12", got.Count)
		}
	})

	t.Run("unbounded matches everything", func(t *testing.T) {
		got := Filter(ds, types.Interval{}, types.GranularityAll)
		if got.Count != 55 {
			t.Errorf("Count = %d, expected 55", got.Count)
		}
	})
}

func TestFilterEmptyAndNil(t *testing.T) {
	iv := types.Interval{
		Start: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
	}

	t.Run("empty dataset", func(t *testing.T) {
		got := Filter(&types.ForecastDataset{}, iv, types.GranularityAll)
		if got.Count != 0 || len(got.Points) != 0 {
			t.Errorf("Count = %d, len(Points) = %d, expected both 0", got.Count, len(got.Points))
		}
	})

	t.Run("nil dataset", func(t *testing.T) {
		got := Filter(nil, iv, types.GranularityAll)
		if got.Count != 0 {
			t.Errorf("Count = %d, expected 0", got.Count)
		}
	})

	t.Run("no matching range", func(t *testing.T) {
		far := types.Interval{
			Start: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC),
		}
		got := Filter(testDataset(), far, types.GranularityAll)
		if got.Count != 0 {
			t.Errorf("Count = %d, expected 0", got.Count)
		}
	})
}

func TestDataPointFieldPresence(t *testing.T) {
	ds := testDataset()
	got := Filter(ds, types.Interval{}, types.GranularityAll)

	for i, p := range got.Points {
		if p.Daily {
			if p.Temperature != nil {
				t.Errorf("point %d: daily point has instantaneous temperature", i)
			}
			if p.TemperatureMin == nil || p.TemperatureMax == nil {
				t.Errorf("point %d: daily point missing min/max temperature", i)
			}
		} else {
			if p.Temperature == nil {
				t.Errorf("point %d: hourly point missing temperature", i)
			}
			if p.TemperatureMin != nil || p.TemperatureMax != nil {
				t.Errorf("point %d: hourly point has min/max temperature", i)
			}
		}
	}
}
