package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kostdesk/internal/adapters/persistence/models"
	"kostdesk/internal/core/domain"
)

func seedCalendar(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()
	f.contract(t, f.room(t, "A1"), "Budi", day(1), day(3))
	scheduled := day(1).Add(10 * time.Hour)
	require.NoError(t, f.ticketsDB.Create(ctx, &models.MaintenanceTicket{Title: "Pipa", ReportedAt: day(-2), ScheduledAt: &scheduled, Status: "Pending"}))
	require.NoError(t, f.todosDB.Create(ctx, &models.TodoTask{Title: "Tagih sewa", DueDate: day(3), Status: "Todo"}))
	require.NoError(t, f.todosDB.Create(ctx, &models.TodoTask{Title: "Lama", DueDate: day(-20), Status: "Done"}))
}

func TestCalendarService_GroupsByDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedCalendar(t, f)

	view, err := f.calendar.Calendar(ctx, CalendarQuery{From: day(0), To: day(7)})
	require.NoError(t, err)
	assert.Zero(t, view.Warnings)
	assert.Equal(t, 4, view.Total)
	require.Len(t, view.Days, 2)

	assert.Equal(t, "2024-12-12", view.Days[0].Date)
	require.Len(t, view.Days[0].Events, 2)
	assert.Equal(t, domain.EventMaintenance, view.Days[0].Events[0].Type, "10:00 repair before 14:00 check-in")
	assert.Equal(t, domain.EventCheckIn, view.Days[0].Events[1].Type)

	assert.Equal(t, "2024-12-14", view.Days[1].Date)
	require.Len(t, view.Days[1].Events, 2)
	assert.Equal(t, domain.EventTodo, view.Days[1].Events[0].Type, "todos sit at midnight")
	assert.Equal(t, domain.EventCheckOut, view.Days[1].Events[1].Type)

	todos, err := f.calendar.Calendar(ctx, CalendarQuery{Type: "todo"})
	require.NoError(t, err)
	assert.Equal(t, 2, todos.Total)
}

func TestCalendarService_Upcoming(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedCalendar(t, f)
	f.contract(t, f.room(t, "A2"), "Broken", day(5), day(1))

	events, warnings, err := f.calendar.Upcoming(ctx, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, warnings)
	require.Len(t, events, 2)
	assert.Equal(t, "Pipa", events[0].Title)
	assert.Equal(t, "Check-in: Budi", events[1].Title)
}

func TestDashboardService_Overview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedCalendar(t, f)

	room := f.room(t, "B1")
	c := f.contract(t, room, "Sari", day(-100), day(20))
	f.contract(t, room, "Broken", day(5), day(1))
	f.invoice(t, c, "INV-1", "Pending", day(-1))
	f.invoice(t, c, "INV-2", "Paid", day(-31))
	require.NoError(t, f.users.Create(ctx, &models.User{Username: "admin", Email: "a@kostdesk.id", Password: "x", Role: "ADMIN", IsActive: true}))

	data, err := f.dashboard.Overview(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "2024-12-11", data.Date)
	assert.Equal(t, int64(1), data.TotalAdmins)
	assert.Equal(t, 2, data.Contracts.Total)
	assert.Equal(t, 2, data.Contracts.ExpiringSoon)
	assert.Equal(t, 1, data.Invoices.Counts["Overdue"])
	assert.Equal(t, domain.Money(150_000_000), data.Invoices.Overdue)
	assert.Equal(t, domain.Money(150_000_000), data.Invoices.Collected)
	assert.Equal(t, 1, data.Maintenance.Open)
	assert.Len(t, data.Upcoming, 4)
	assert.Equal(t, 1, data.Warnings, "the broken contract is counted once")
	assert.Equal(t, "1 record could not be processed", data.WarningMessage)
}
