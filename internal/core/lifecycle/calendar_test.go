package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kostdesk/internal/core/domain"
)

func TestContractEvents(t *testing.T) {
	t.Parallel()
	p := DefaultPolicy()
	c := contractEnding(5, 20)
	c.RoomNumber = "12B"

	events, err := p.ContractEvents(c, testNow)
	require.NoError(t, err)
	require.Len(t, events, 2)

	in, out := events[0], events[1]
	assert.Equal(t, domain.EventCheckIn, in.Type)
	assert.Equal(t, 14, in.StartDate.Hour())
	assert.Equal(t, p.DayKey(c.StartDate), p.DayKey(in.StartDate))
	assert.Equal(t, "Room 12B", in.Location)
	assert.Equal(t, "contract-5-in", in.ID)
	assert.Equal(t, uint(5), in.SourceID)

	assert.Equal(t, domain.EventCheckOut, out.Type)
	assert.Equal(t, 12, out.StartDate.Hour())
	assert.Equal(t, p.DayKey(c.EndDate), p.DayKey(out.StartDate))
	assert.Equal(t, string(domain.ContractExpiring), out.Status)
}

func TestContractEvents_InvalidContract(t *testing.T) {
	t.Parallel()
	c := contractEnding(5, 20)
	c.StartDate = time.Time{}

	_, err := DefaultPolicy().ContractEvents(c, testNow)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTicketEvent_PrefersSchedule(t *testing.T) {
	t.Parallel()
	p := DefaultPolicy()
	scheduled := day(2).Add(10 * time.Hour)
	tk := domain.MaintenanceTicket{ID: 9, Title: "AC repair", ReportedAt: day(-1), ScheduledAt: &scheduled, Status: domain.TicketInProgress, Location: "Room 3", AssignedTo: "Budi"}

	ev, err := p.TicketEvent(tk)
	require.NoError(t, err)
	assert.Equal(t, scheduled, ev.StartDate)
	assert.Equal(t, "In Progress", ev.Status)
	assert.Equal(t, "Budi", ev.AssignedTo)

	tk.ScheduledAt = nil
	ev, err = p.TicketEvent(tk)
	require.NoError(t, err)
	assert.Equal(t, day(-1), ev.StartDate)

	tk.Status = "Parked"
	ev, err = p.TicketEvent(tk)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnknown, ev.Status)
}

func TestCalendarEvents_Concatenates(t *testing.T) {
	t.Parallel()
	p := DefaultPolicy()
	badTodo := domain.TodoTask{ID: 2, Title: "no date"}

	batch := p.CalendarEvents(
		[]domain.Contract{contractEnding(1, 40)},
		[]domain.MaintenanceTicket{{ID: 1, Title: "Fix door", ReportedAt: day(0), Status: domain.TicketPending}},
		[]domain.TodoTask{{ID: 1, Title: "Pay water bill", DueDate: day(1), Status: domain.TodoOpen}, badTodo},
		testNow,
	)

	require.Len(t, batch.Items, 4)
	var types []domain.EventType
	for _, e := range batch.Items {
		types = append(types, e.Type)
	}
	assert.Equal(t, []domain.EventType{domain.EventCheckIn, domain.EventCheckOut, domain.EventMaintenance, domain.EventTodo}, types)
	assert.Equal(t, 1, batch.WarningCount())
}

func TestInRangeAndUpcoming(t *testing.T) {
	t.Parallel()
	p := DefaultPolicy()
	events := []domain.CalendarEvent{
		event("past", day(-3)),
		event("today", day(0).Add(20*time.Hour)),
		event("week", day(7)),
		event("later", day(8)),
	}

	got := p.InRange(events, day(-3), day(0))
	require.Len(t, got, 2)
	assert.Equal(t, "past", got[0].ID)
	assert.Equal(t, "today", got[1].ID)

	assert.Len(t, p.InRange(events, time.Time{}, time.Time{}), 4)

	up := p.Upcoming(events, 7, testNow)
	require.Len(t, up, 2)
	assert.Equal(t, "today", up[0].ID)
	assert.Equal(t, "week", up[1].ID)
}
