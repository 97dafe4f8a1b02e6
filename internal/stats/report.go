package stats

import "time"

// Frame is one age bucket of the study-time breakdown.
type Frame struct {
	Key     string
	Label   string
	Seconds int
	Percent int // relative to the largest bucket, for bar rendering
}

// Report aggregates an owner's session log.
type Report struct {
	WeekSeconds    int // rolling last 7 days
	AllTimeSeconds int
	Frames         []Frame
}

// Report builds the aggregate time report the overview shows: a rolling
// weekly total, the all-time total and an age-bucket breakdown.
func (s *Service) Report(ownerKey string, now time.Time) (Report, error) {
	entries, err := s.List(ownerKey)
	if err != nil {
		return Report{}, err
	}

	nowMs := now.UnixMilli()
	dayMs := int64(24 * time.Hour / time.Millisecond)

	var r Report
	var last24h, last7d, days8to30, days31to90, older int

	for _, e := range entries {
		sec := e.DurationSeconds
		if sec < 0 {
			sec = 0
		}
		r.AllTimeSeconds += sec

		age := nowMs - e.CreatedAt
		switch {
		case age <= dayMs:
			last24h += sec
		case age <= 7*dayMs:
			last7d += sec
		case age <= 30*dayMs:
			days8to30 += sec
		case age <= 90*dayMs:
			days31to90 += sec
		default:
			older += sec
		}
	}

	r.WeekSeconds = last24h + last7d

	max := last24h
	for _, v := range []int{last7d, days8to30, days31to90, older} {
		if v > max {
			max = v
		}
	}
	pct := func(v int) int {
		if max <= 0 {
			return 0
		}
		return v * 100 / max
	}

	r.Frames = []Frame{
		{Key: "24h", Label: "Last 24 hours", Seconds: last24h, Percent: pct(last24h)},
		{Key: "7d", Label: "Last 7 days", Seconds: last7d, Percent: pct(last7d)},
		{Key: "8-30", Label: "Days 8 to 30", Seconds: days8to30, Percent: pct(days8to30)},
		{Key: "31-90", Label: "Days 31 to 90", Seconds: days31to90, Percent: pct(days31to90)},
		{Key: "old", Label: "Older than 90", Seconds: older, Percent: pct(older)},
	}
	return r, nil
}
