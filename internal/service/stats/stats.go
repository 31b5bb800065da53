// Package stats derives per-employee and per-group summary statistics from a
// flat worklog snapshot. Every function here is pure; every ratio guards the
// zero denominator and returns 0 instead of NaN, because every view renders
// a percentage unconditionally.
package stats

import (
	"sort"

	"github.com/hoursly/worklog-portal/internal/domain/dashboard"
	"github.com/hoursly/worklog-portal/internal/domain/employee"
	"github.com/hoursly/worklog-portal/internal/domain/worklog"
	"github.com/hoursly/worklog-portal/internal/pkg/daterange"
)

// Personal aggregates an already viewer-scoped worklog list, e.g. the
// response of the my-worklogs endpoint.
func Personal(logs []worklog.Worklog, expectedHours float64) dashboard.MemberStats {
	var totalHours float64
	dates := make(map[string]struct{})

	for _, l := range logs {
		totalHours += l.HoursWorked
		dates[l.WorkDate] = struct{}{}
	}

	daysWorked := len(dates)
	var averageHours float64
	if daysWorked > 0 {
		averageHours = totalHours / float64(daysWorked)
	}

	return dashboard.MemberStats{
		TotalHours:      totalHours,
		DaysWorked:      daysWorked,
		AverageHours:    averageHours,
		UtilizationRate: daterange.UtilizationRate(totalHours, expectedHours),
	}
}

// PerEmployee restricts logs to one employee and aggregates them.
func PerEmployee(employeeID string, logs []worklog.Worklog, expectedHours float64) dashboard.MemberStats {
	var own []worklog.Worklog
	for _, l := range logs {
		if l.EmployeeID == employeeID {
			own = append(own, l)
		}
	}

	m := Personal(own, expectedHours)
	m.EmployeeID = employeeID
	return m
}

// Members aggregates the worklogs for every roster member, including members
// without any logs. Rows are ordered by name, then id, for stable rendering.
func Members(roster []employee.Employee, logs []worklog.Worklog, expectedHours float64) []dashboard.MemberStats {
	byEmployee := make(map[string][]worklog.Worklog, len(roster))
	for _, l := range logs {
		byEmployee[l.EmployeeID] = append(byEmployee[l.EmployeeID], l)
	}

	members := make([]dashboard.MemberStats, 0, len(roster))
	for _, e := range roster {
		m := PerEmployee(e.ID, byEmployee[e.ID], expectedHours)
		m.Name = e.Name
		members = append(members, m)
	}

	sort.Slice(members, func(i, j int) bool {
		if members[i].Name != members[j].Name {
			return members[i].Name < members[j].Name
		}
		return members[i].EmployeeID < members[j].EmployeeID
	})
	return members
}

// Group rolls member rows up into the team or department summary.
func Group(members []dashboard.MemberStats, expectedHours float64) dashboard.GroupStats {
	g := dashboard.GroupStats{MemberCount: len(members)}

	for _, m := range members {
		g.TotalHours += m.TotalHours
		if m.TotalHours > 0 {
			g.EmployeesWithLogs++
		}
	}

	if g.MemberCount > 0 {
		g.AverageHoursPerMember = g.TotalHours / float64(g.MemberCount)
		g.LogComplianceRate = float64(g.EmployeesWithLogs) / float64(g.MemberCount) * 100
	}
	g.UtilizationRate = daterange.UtilizationRate(g.TotalHours, expectedHours*float64(g.MemberCount))

	return g
}

// TypeBreakdown distributes logged hours over work-type names. With zero
// total hours every percentage is 0, never NaN. Slices are ordered by hours
// descending, then name.
func TypeBreakdown(logs []worklog.Worklog) []dashboard.TypeShare {
	hoursByType := make(map[string]float64)
	var totalHours float64
	for _, l := range logs {
		hoursByType[l.WorkType] += l.HoursWorked
		totalHours += l.HoursWorked
	}

	shares := make([]dashboard.TypeShare, 0, len(hoursByType))
	for name, hours := range hoursByType {
		share := dashboard.TypeShare{WorkType: name, Hours: hours}
		if totalHours > 0 {
			share.Percentage = hours / totalHours * 100
		}
		shares = append(shares, share)
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Hours != shares[j].Hours {
			return shares[i].Hours > shares[j].Hours
		}
		return shares[i].WorkType < shares[j].WorkType
	})
	return shares
}

// GroupByDate folds a worklog list into per-date groups with summed hours,
// ordered by date descending (newest first).
func GroupByDate(logs []worklog.Worklog) []worklog.DayGroup {
	byDate := make(map[string][]worklog.Worklog)
	for _, l := range logs {
		byDate[l.WorkDate] = append(byDate[l.WorkDate], l)
	}

	groups := make([]worklog.DayGroup, 0, len(byDate))
	for date, entries := range byDate {
		var total float64
		for _, l := range entries {
			total += l.HoursWorked
		}
		groups = append(groups, worklog.DayGroup{Date: date, TotalHours: total, Worklogs: entries})
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Date > groups[j].Date })
	return groups
}
