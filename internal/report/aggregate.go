package report

import (
	"time"

	"github.com/deskmetrics/helpdesk-reports/internal/access"
	"github.com/deskmetrics/helpdesk-reports/internal/domain"
	"github.com/deskmetrics/helpdesk-reports/internal/index"
)

// NoData names the most common category when nothing can be tallied.
const NoData = "No data"

// Timeline window bounds in days.
const (
	MinTimelineDays = 1
	MaxTimelineDays = 365
)

// StatusCounts buckets tickets by status. Tickets with an unknown status
// count toward Total only.
type StatusCounts struct {
	Total    int
	Active   int
	Resolved int
}

// CountByStatusBucket tallies active and resolved tickets.
func CountByStatusBucket(tickets []domain.Ticket) StatusCounts {
	counts := StatusCounts{Total: len(tickets)}
	for _, t := range tickets {
		switch {
		case t.StatusID.IsActive():
			counts.Active++
		case t.StatusID.IsResolved():
			counts.Resolved++
		}
	}
	return counts
}

// ResolutionRate returns resolved/total*100, or 0 for no tickets.
func ResolutionRate(tickets []domain.Ticket) float64 {
	counts := CountByStatusBucket(tickets)
	return percentage(counts.Resolved, counts.Total)
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// AverageResolutionHours averages closed_at-created_at over tickets carrying
// both timestamps. Tickets missing either are left out, not counted as zero.
func AverageResolutionHours(tickets []domain.Ticket) float64 {
	var (
		sum   float64
		count int
	)
	for _, t := range tickets {
		if t.CreatedAt.IsZero() || t.ClosedAt == nil || t.ClosedAt.IsZero() {
			continue
		}
		sum += t.ClosedAt.Sub(t.CreatedAt).Hours()
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// MostCommonCategory names the category with the most tickets. Ties go to the
// lowest category id. NoData is returned when there are no tickets or the
// winning id does not resolve.
func MostCommonCategory(tickets []domain.Ticket, idx *index.Indexer) string {
	tally := make(map[int64]int)
	for _, t := range tickets {
		tally[t.CategoryID]++
	}

	var (
		bestID    int64
		bestCount int
	)
	for id, count := range tally {
		if count > bestCount || (count == bestCount && id < bestID) {
			bestID, bestCount = id, count
		}
	}
	if bestCount == 0 {
		return NoData
	}
	category, ok := idx.CategoryByID(bestID)
	if !ok || category.Name == "" {
		return NoData
	}
	return category.Name
}

// TimelineBucket counts tickets created and resolved on one calendar day.
type TimelineBucket struct {
	Date     time.Time
	Created  int
	Resolved int
}

// ClampDays bounds a requested timeline window to [1, 365].
func ClampDays(days int) int {
	if days < MinTimelineDays {
		return MinTimelineDays
	}
	if days > MaxTimelineDays {
		return MaxTimelineDays
	}
	return days
}

// Timeline returns one bucket per calendar day, oldest first, ending on the
// reference date. Dates are compared in the reference date's location.
func Timeline(tickets []domain.Ticket, days int, reference time.Time) []TimelineBucket {
	days = ClampDays(days)
	loc := reference.Location()
	end := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, loc)

	buckets := make([]TimelineBucket, days)
	byDay := make(map[string]int, days)
	for i := range buckets {
		date := end.AddDate(0, 0, i-(days-1))
		buckets[i].Date = date
		byDay[date.Format(time.DateOnly)] = i
	}

	for _, t := range tickets {
		if !t.CreatedAt.IsZero() {
			if i, ok := byDay[sameDay(t.CreatedAt, loc)]; ok {
				buckets[i].Created++
			}
		}
		if t.ClosedAt != nil && !t.ClosedAt.IsZero() {
			if i, ok := byDay[sameDay(*t.ClosedAt, loc)]; ok {
				buckets[i].Resolved++
			}
		}
	}
	return buckets
}

// sameDay renders t as a calendar date in loc.
func sameDay(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.DateOnly)
}

// CategoryStat summarises one category.
type CategoryStat struct {
	CategoryID     int64
	CategoryName   string
	TicketCount    int
	ResolutionRate float64
}

// CategoryBreakdown reports every known category in catalogue order,
// including categories without tickets.
func CategoryBreakdown(tickets []domain.Ticket, categories []domain.ProblemCategory) []CategoryStat {
	byCategory := make(map[int64][]domain.Ticket)
	for _, t := range tickets {
		byCategory[t.CategoryID] = append(byCategory[t.CategoryID], t)
	}

	result := make([]CategoryStat, 0, len(categories))
	for _, c := range categories {
		matched := byCategory[c.ID]
		result = append(result, CategoryStat{
			CategoryID:     c.ID,
			CategoryName:   c.Name,
			TicketCount:    len(matched),
			ResolutionRate: ResolutionRate(matched),
		})
	}
	return result
}

// DepartmentStat summarises one department.
type DepartmentStat struct {
	Department        string
	TicketCount       int
	ActiveTicketCount int
	ActiveStaffCount  int
}

// DepartmentBreakdown reports each department visible to the identity.
// Tickets are attributed to a department through their assignee.
func DepartmentBreakdown(identity domain.StaffIdentity, staff []domain.StaffMember, tickets []domain.Ticket, departments []string) []DepartmentStat {
	visible := access.VisibleDepartments(identity, departments)
	result := make([]DepartmentStat, 0, len(visible))
	for _, dept := range visible {
		memberIDs := make(map[int64]struct{})
		activeStaff := 0
		for _, member := range staff {
			if member.Department != dept {
				continue
			}
			memberIDs[member.ID] = struct{}{}
			if member.IsActive {
				activeStaff++
			}
		}
		deptTickets := access.TicketsAssignedToAny(memberIDs, tickets)
		counts := CountByStatusBucket(deptTickets)
		result = append(result, DepartmentStat{
			Department:        dept,
			TicketCount:       counts.Total,
			ActiveTicketCount: counts.Active,
			ActiveStaffCount:  activeStaff,
		})
	}
	return result
}

// StaffWorkload pairs a staff member with the status counts of the tickets
// assigned to them.
type StaffWorkload struct {
	domain.StaffMember
	StatusCounts
}

// StaffWorkloads computes per-member workload.
func StaffWorkloads(members []domain.StaffMember, idx *index.Indexer) []StaffWorkload {
	result := make([]StaffWorkload, 0, len(members))
	for _, m := range members {
		result = append(result, StaffWorkload{
			StaffMember:  m,
			StatusCounts: CountByStatusBucket(idx.TicketsByAssignedStaff(m.ID)),
		})
	}
	return result
}
