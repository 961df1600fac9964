package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kostdesk/internal/adapters/persistence/models"
	"kostdesk/internal/core/domain"
)

func TestMaintenanceService_StatusIsOperatorDriven(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ticket, err := f.maintenance.Create(ctx, &CreateTicketInput{Title: "AC bocor", Category: "ac", Cost: domain.Rupiah(250_000)})
	require.NoError(t, err)
	assert.Equal(t, domain.TicketPending, ticket.Status)
	assert.Equal(t, domain.PriorityMedium, ticket.Priority)
	assert.Equal(t, testNow, ticket.ReportedAt)

	done, err := f.maintenance.UpdateStatus(ctx, ticket.ID, domain.TicketCompleted)
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)

	reopened, err := f.maintenance.UpdateStatus(ctx, ticket.ID, domain.TicketInProgress)
	require.NoError(t, err)
	assert.Nil(t, reopened.CompletedAt)

	_, err = f.maintenance.UpdateStatus(ctx, ticket.ID, "Closed")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.maintenance.UpdateStatus(ctx, 404, domain.TicketCompleted)
	assert.ErrorIs(t, err, ErrTicketNotFound)

	_, err = f.maintenance.UpdateStatus(ctx, ticket.ID, domain.TicketCompleted)
	require.NoError(t, err)
	require.NoError(t, f.ticketsDB.Create(ctx, &models.MaintenanceTicket{Title: "Old", ReportedAt: day(-90), Status: "Archived"}))

	sum, err := f.maintenance.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, 1, sum.Counts["Completed"])
	assert.Equal(t, 1, sum.Counts[domain.StatusUnknown])
	assert.Equal(t, 0, sum.Open)
	assert.Equal(t, domain.Rupiah(250_000), sum.CompletedCost)

	res, err := f.maintenance.List(ctx, ListQuery{Filters: map[string]string{"category": "ac"}})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, 1, res.Warnings)
}

func TestMaintenanceService_CreateValidates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.maintenance.Create(ctx, &CreateTicketInput{})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.maintenance.Create(ctx, &CreateTicketInput{Title: "x", Priority: "critical"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.maintenance.Create(ctx, &CreateTicketInput{Title: "x", Cost: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTodoService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	todo, err := f.todos.Create(ctx, &CreateTodoInput{Title: "Cek meteran listrik", DueDate: day(2), AssignedTo: "Joko", Priority: domain.PriorityHigh})
	require.NoError(t, err)
	assert.Equal(t, domain.TodoOpen, todo.Status)

	_, err = f.todos.Create(ctx, &CreateTodoInput{Title: "No date"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	done, err := f.todos.UpdateStatus(ctx, todo.ID, domain.TodoDone)
	require.NoError(t, err)
	assert.Equal(t, domain.TodoDone, done.Status)

	_, err = f.todos.UpdateStatus(ctx, todo.ID, "Later")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.todos.UpdateStatus(ctx, 99, domain.TodoDone)
	assert.ErrorIs(t, err, ErrTodoNotFound)

	res, err := f.todos.List(ctx, ListQuery{Query: "listrik", Filters: map[string]string{"assigned_to": "joko"}})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, domain.TodoDone, res.Items[0].Status)
}

func TestPropertyService_Occupancy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	prop, err := f.props.Create(ctx, &CreatePropertyInput{Name: "Kost Mawar"})
	require.NoError(t, err)
	occupied, err := f.props.CreateRoom(ctx, prop.ID, &CreateRoomInput{Number: "1", MonthlyRent: domain.Rupiah(1_200_000)})
	require.NoError(t, err)
	free, err := f.props.CreateRoom(ctx, prop.ID, &CreateRoomInput{Number: "2"})
	require.NoError(t, err)
	repair, err := f.props.CreateRoom(ctx, prop.ID, &CreateRoomInput{Number: "3"})
	require.NoError(t, err)
	assert.Equal(t, 1, free.Floor)

	room, err := f.properties.GetRoom(ctx, occupied.ID)
	require.NoError(t, err)
	f.contract(t, room, "Budi", day(-10), day(100))

	freeRoom, err := f.properties.GetRoom(ctx, free.ID)
	require.NoError(t, err)
	f.contract(t, freeRoom, "Past tenant", day(-400), day(-30))
	f.contract(t, freeRoom, "Future tenant", day(30), day(400))

	flagged, err := f.props.SetMaintenance(ctx, repair.ID, true)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomMaintenance, flagged.Occupancy)

	rooms, err := f.props.ListRooms(ctx, prop.ID, ListQuery{})
	require.NoError(t, err)
	require.Len(t, rooms.Items, 3)
	assert.Equal(t, domain.RoomOccupied, rooms.Items[0].Occupancy)
	assert.Equal(t, domain.RoomAvailable, rooms.Items[1].Occupancy)
	assert.Equal(t, domain.RoomMaintenance, rooms.Items[2].Occupancy)

	list, err := f.props.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 3, list[0].Rooms)
	assert.Equal(t, map[domain.Occupancy]int{domain.RoomAvailable: 1, domain.RoomOccupied: 1, domain.RoomMaintenance: 1}, list[0].Occupancy)

	avail, err := f.props.ListRooms(ctx, prop.ID, ListQuery{Filters: map[string]string{"occupancy": "available"}})
	require.NoError(t, err)
	require.Len(t, avail.Items, 1)
	assert.Equal(t, "2", avail.Items[0].Number)

	_, err = f.props.ListRooms(ctx, 999, ListQuery{})
	assert.ErrorIs(t, err, ErrPropertyNotFound)
	_, err = f.props.CreateRoom(ctx, prop.ID, &CreateRoomInput{Number: "1"})
	assert.Error(t, err, "duplicate room number")
}

func TestCashFlowService_Summary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, in := range []CreateCashFlowInput{
		{Kind: domain.CashFlowIncome, Category: "rent", Amount: domain.Rupiah(1_500_000), Date: day(-3)},
		{Kind: domain.CashFlowIncome, Category: "rent", Amount: domain.Rupiah(1_250_000), Date: day(-40)},
		{Kind: domain.CashFlowExpense, Category: "utilities", Amount: domain.Rupiah(420_500), Date: day(-2)},
		{Kind: domain.CashFlowIncome, Category: "deposit", Amount: domain.Rupiah(500_000), Status: domain.CashFlowPending},
	} {
		in := in
		_, err := f.cash.Create(ctx, &in)
		require.NoError(t, err)
	}

	sum, err := f.cash.Summary(ctx, day(-7), day(0))
	require.NoError(t, err)
	assert.Equal(t, domain.Rupiah(1_500_000), sum.Income)
	assert.Equal(t, domain.Rupiah(420_500), sum.Expense)
	assert.Equal(t, domain.Rupiah(1_079_500), sum.Net)
	assert.Equal(t, domain.Rupiah(500_000), sum.PendingIncome)
	assert.Equal(t, map[string]int{"Completed": 2, "Pending": 1}, sum.Counts)

	all, err := f.cash.Summary(ctx, day(-365), day(0))
	require.NoError(t, err)
	assert.Equal(t, domain.Rupiah(2_750_000), all.Income)

	res, err := f.cash.List(ctx, ListQuery{Filters: map[string]string{"kind": "income", "category": "rent"}})
	require.NoError(t, err)
	assert.Len(t, res.Items, 2)

	_, err = f.cash.Create(ctx, &CreateCashFlowInput{Kind: "transfer", Amount: 1})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.cash.Create(ctx, &CreateCashFlowInput{Kind: domain.CashFlowIncome, Amount: 0})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
