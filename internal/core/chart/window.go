package chart

import (
	"fmt"
	"time"

	"github.com/penwyp/go-activity-timeline/internal/core/model"
	"github.com/penwyp/go-activity-timeline/internal/util"
)

// WindowSpec is the daily chart window as wall-clock times, e.g. 07:00 to 24:00.
type WindowSpec struct {
	Start util.ClockTime
	End   util.ClockTime
}

// DefaultWindowSpec is 07:00 through the following midnight.
var DefaultWindowSpec = WindowSpec{
	Start: util.ClockTime{Hour: 7},
	End:   util.ClockTime{Hour: 24},
}

// ParseWindowSpec parses start and end clock strings.
func ParseWindowSpec(start, end string) (WindowSpec, error) {
	s, err := util.ParseClock(start)
	if err != nil {
		return WindowSpec{}, fmt.Errorf("window start: %w", err)
	}
	e, err := util.ParseClock(end)
	if err != nil {
		return WindowSpec{}, fmt.Errorf("window end: %w", err)
	}
	return WindowSpec{Start: s, End: e}, nil
}

// On returns the concrete window for date, in date's location.
func (w WindowSpec) On(date time.Time) model.ChartWindow {
	return model.ChartWindow{
		Start: w.Start.On(date),
		End:   w.End.On(date),
	}
}

func (w WindowSpec) String() string {
	return w.Start.String() + "-" + w.End.String()
}
