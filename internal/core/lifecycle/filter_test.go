package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kostdesk/internal/core/domain"
)

func TestMatches(t *testing.T) {
	t.Parallel()
	ac := Record{
		Text:   []string{"AC repair", "Unit in room 204 is leaking"},
		Fields: map[string]string{"category": "hvac", "status": "Pending", "assigned_to": ""},
	}

	tests := []struct {
		name    string
		query   string
		filters map[string]string
		want    bool
	}{
		{"text with all filter", "ac", map[string]string{"category": "all"}, true},
		{"text miss", "plumbing", map[string]string{}, false},
		{"empty query and no filters", "", nil, true},
		{"case insensitive query", "LEAKING", nil, true},
		{"whitespace query ignored", "   ", nil, true},
		{"filter match", "", map[string]string{"category": "hvac"}, true},
		{"filter match case insensitive", "", map[string]string{"status": "pending"}, true},
		{"filter mismatch", "", map[string]string{"category": "plumbing"}, false},
		{"all filters are ANDed", "repair", map[string]string{"category": "hvac", "status": "Completed"}, false},
		{"empty filter value ignored", "", map[string]string{"category": ""}, true},
		{"ALL is no constraint", "", map[string]string{"status": "ALL"}, true},
		{"missing field does not match", "", map[string]string{"priority": "high"}, false},
		{"empty field does not match", "", map[string]string{"assigned_to": "budi"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Matches(ac, tt.query, tt.filters))
		})
	}
}

func TestMatches_NilRecordIsTotal(t *testing.T) {
	t.Parallel()
	assert.True(t, Matches(Record{}, "", map[string]string{"status": "all"}))
	assert.False(t, Matches(Record{}, "x", nil))
	assert.False(t, Matches(Record{}, "", map[string]string{"status": "Pending"}))
}

func TestFilter_Tickets(t *testing.T) {
	t.Parallel()
	tickets := []domain.MaintenanceTicket{
		{ID: 1, Title: "AC repair", Category: "hvac", Status: domain.TicketPending, Priority: domain.PriorityHigh},
		{ID: 2, Title: "Leaking sink", Category: "plumbing", Status: domain.TicketPending, Priority: domain.PriorityLow},
		{ID: 3, Title: "Replace AC filter", Category: "hvac", Status: domain.TicketCompleted, Priority: domain.PriorityLow},
	}

	got := Filter(tickets, TicketRecord, "ac", map[string]string{"status": "all", "category": "hvac"})
	assert.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, uint(3), got[1].ID)

	got = Filter(tickets, TicketRecord, "", map[string]string{"priority": "low", "status": "Pending"})
	assert.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ID)
}

func TestFilter_ContractsByDerivedStatus(t *testing.T) {
	t.Parallel()
	p := DefaultPolicy()
	batch := p.DeriveContracts([]domain.Contract{contractEnding(1, 10), contractEnding(2, 90), contractEnding(3, 5)}, testNow)

	got := Filter(batch.Items, ContractRecord, "", map[string]string{"status": "expiring"})
	assert.Len(t, got, 2)

	got = Filter(batch.Items, ContractRecord, "tenant 2", nil)
	assert.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ID)
}
