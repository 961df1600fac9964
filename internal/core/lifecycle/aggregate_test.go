package lifecycle

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kostdesk/internal/core/domain"
)

func event(id string, start time.Time) domain.CalendarEvent {
	return domain.CalendarEvent{ID: id, Title: id, StartDate: start, EndDate: start, Type: domain.EventTodo}
}

func TestGroupEventsByDay_SameDayPreservesOrder(t *testing.T) {
	t.Parallel()
	p := DefaultPolicy()
	events := []domain.CalendarEvent{
		event("second-by-time", time.Date(2024, 12, 11, 16, 0, 0, 0, time.UTC)),
		event("first-by-time", time.Date(2024, 12, 11, 8, 0, 0, 0, time.UTC)),
	}

	groups, warnings := p.GroupEventsByDay(events)

	require.Empty(t, warnings)
	require.Equal(t, []string{"2024-12-11"}, groups.Days())
	require.Len(t, groups["2024-12-11"], 2)
	assert.Equal(t, "second-by-time", groups["2024-12-11"][0].ID)
	assert.Equal(t, "first-by-time", groups["2024-12-11"][1].ID)
}

func TestGroupEventsByDay_IsPartition(t *testing.T) {
	t.Parallel()
	p := DefaultPolicy()
	var events []domain.CalendarEvent
	for i := 0; i < 50; i++ {
		events = append(events, event(string(rune('a'+i%26))+string(rune('0'+i/26)), day(i%9-4).Add(time.Duration(i)*time.Hour/3)))
	}

	groups, warnings := p.GroupEventsByDay(events)
	require.Empty(t, warnings)
	assert.Equal(t, len(events), groups.Len())

	seen := map[string]int{}
	for key, items := range groups {
		for _, e := range items {
			assert.Equal(t, key, p.DayKey(e.StartDate))
			seen[e.ID]++
		}
	}
	for _, e := range events {
		assert.Equal(t, 1, seen[e.ID], e.ID)
	}
}

func TestGroupEventsByDay_DaysAreSorted(t *testing.T) {
	t.Parallel()
	p := DefaultPolicy()
	groups, _ := p.GroupEventsByDay([]domain.CalendarEvent{
		event("c", day(3)), event("a", day(-2)), event("b", day(0)),
	})
	assert.Equal(t, []string{"2024-12-09", "2024-12-11", "2024-12-14"}, groups.Days())
}

func TestGroupEventsByDay_ZeroDateIsWarning(t *testing.T) {
	t.Parallel()
	p := DefaultPolicy()
	bad := event("todo-42", time.Time{})
	bad.SourceID = 42
	groups, warnings := p.GroupEventsByDay([]domain.CalendarEvent{event("ok", day(0)), bad})

	assert.Equal(t, 1, groups.Len())
	require.Len(t, warnings, 1)
	assert.ErrorIs(t, warnings[0], domain.ErrValidation)
	var v *domain.ValidationError
	require.ErrorAs(t, warnings[0], &v)
	assert.Equal(t, uint(42), v.RecordID)
	assert.Equal(t, "calendar event", v.Entity)
}

func TestGroupByDay_UsesPolicyLocation(t *testing.T) {
	t.Parallel()
	p := Policy{ExpiringThresholdDays: 30, Location: time.FixedZone("WIB", 7*60*60)}
	late := time.Date(2024, 12, 11, 20, 0, 0, 0, time.UTC)

	groups, _ := GroupByDay(p, []time.Time{late}, func(time.Time) uint { return 0 }, func(t time.Time) time.Time { return t })
	assert.Equal(t, []string{"2024-12-12"}, groups.Days())
}

func TestSummaryCounts_IncludesZeroBuckets(t *testing.T) {
	t.Parallel()
	tickets := []domain.MaintenanceTicket{
		{ID: 1, Status: domain.TicketPending},
		{ID: 2, Status: domain.TicketPending},
		{ID: 3, Status: "Waiting for parts"},
	}

	counts := SummaryCounts(tickets, domain.TicketStatuses, func(t domain.MaintenanceTicket) domain.TicketStatus { return t.Status })

	assert.Equal(t, map[string]int{
		"Pending":            2,
		"In Progress":        0,
		"Completed":          0,
		domain.StatusUnknown: 1,
	}, counts)
}

func TestSummaryCounts_TotalEqualsLen(t *testing.T) {
	t.Parallel()
	statuses := []domain.WaitingStatus{"Pending", "Approved", "Rejected", "Converted", "Lost", ""}
	r := rand.New(rand.NewSource(7))
	records := make([]domain.WaitingListEntry, 200)
	for i := range records {
		records[i] = domain.WaitingListEntry{ID: uint(i + 1), Status: statuses[r.Intn(len(statuses))]}
	}

	counts := SummaryCounts(records, domain.WaitingStatuses, func(e domain.WaitingListEntry) domain.WaitingStatus { return e.Status })

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, len(records), total)
}

func TestSummaryCounts_Empty(t *testing.T) {
	t.Parallel()
	counts := SummaryCounts([]domain.ContractView(nil), domain.ContractStatuses, func(v domain.ContractView) domain.ContractStatus { return v.Status })
	assert.Equal(t, map[string]int{"active": 0, "expiring": 0, "expired": 0}, counts)
}

func TestTotalAmount_CompletedOnly(t *testing.T) {
	t.Parallel()
	entries := []domain.CashFlowEntry{
		{ID: 1, Amount: domain.Rupiah(1_500_000), Status: domain.CashFlowCompleted},
		{ID: 2, Amount: domain.Rupiah(750_000), Status: domain.CashFlowPending},
		{ID: 3, Amount: domain.Money(10), Status: domain.CashFlowCompleted},
	}

	got := TotalAmount(entries,
		func(e domain.CashFlowEntry) domain.Money { return e.Amount },
		func(e domain.CashFlowEntry) bool { return e.Status == domain.CashFlowCompleted })

	assert.Equal(t, domain.Money(150_000_010), got)
	assert.Equal(t, "Rp 1.500.000,10", got.Format())
}

func TestTotalAmount_OrderIndependent(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(42))
	entries := make([]domain.CashFlowEntry, 1000)
	for i := range entries {
		entries[i] = domain.CashFlowEntry{ID: uint(i), Amount: domain.Money(10 + r.Int63n(1_000_000_00))}
	}
	amount := func(e domain.CashFlowEntry) domain.Money { return e.Amount }

	want := TotalAmount(entries, amount, nil)
	for i := 0; i < 5; i++ {
		shuffled := append([]domain.CashFlowEntry(nil), entries...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, TotalAmount(shuffled, amount, nil))
	}

	// ten times 0.10 drifts in float64
	tenCents := make([]domain.CashFlowEntry, 10)
	for i := range tenCents {
		tenCents[i].Amount = domain.Money(10)
	}
	assert.Equal(t, "1.00", TotalAmount(tenCents, amount, nil).String())
}
