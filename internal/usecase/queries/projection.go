package queries

import (
	"sort"
	"time"

	"fleet-workflow/internal/domain/workorder"
	"fleet-workflow/internal/pkg/clock"
)

const (
	calendarHorizonMonths = 2
	calendarLookbackDays  = 7
	calendarDayLayout     = "02/01/2006"
)

// CalendarWindow is the range of scheduled dates the calendar counts: today
// up to, but excluding, the same day two months later.
func CalendarWindow(now time.Time) (from, to time.Time) {
	from = clock.StartOfDay(now)
	return from, from.AddDate(0, calendarHorizonMonths, 0)
}

// CalendarCounts counts programado orders per day inside CalendarWindow, sorted by date.
func CalendarCounts(orders []*WorkOrderView, now time.Time) []CalendarDay {
	from, to := CalendarWindow(now)
	loc := now.Location()

	counts := map[time.Time]int{}
	for _, o := range orders {
		if o.Status != workorder.StatusProgramado.String() {
			continue
		}
		at := o.ScheduledAt.In(loc)
		if at.Before(from) || !at.Before(to) {
			continue
		}
		counts[clock.StartOfDay(at)]++
	}

	days := make([]time.Time, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	out := make([]CalendarDay, len(days))
	for i, d := range days {
		out[i] = CalendarDay{Day: d.Format(calendarDayLayout), Count: counts[d]}
	}
	return out
}

// FeedSince is the start of the active-work feed for a lookback of days.
func FeedSince(now time.Time, lookbackDays int) time.Time {
	return clock.StartOfDay(now).AddDate(0, 0, -lookbackDays)
}

// ActiveFeed keeps the orders scheduled on or after since that did not expire,
// ordered by scheduled date.
func ActiveFeed(orders []*WorkOrderView, since time.Time) []*WorkOrderView {
	out := make([]*WorkOrderView, 0, len(orders))
	for _, o := range orders {
		if o.Status == workorder.StatusExpirado.String() || o.ScheduledAt.Before(since) {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out
}

// feedStatuses is every status except expirado.
func feedStatuses() []string {
	all := []workorder.Status{
		workorder.StatusProgramado,
		workorder.StatusPendiente,
		workorder.StatusRevision,
		workorder.StatusAprobado,
		workorder.StatusDenegado,
		workorder.StatusCompletado,
	}
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = s.String()
	}
	return out
}
