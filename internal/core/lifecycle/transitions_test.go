package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kostdesk/internal/core/domain"
)

func TestNextWaitingStatus(t *testing.T) {
	t.Parallel()

	allowed := map[domain.WaitingStatus]map[WaitingAction]domain.WaitingStatus{
		domain.WaitingPending:  {ActionApprove: domain.WaitingApproved, ActionReject: domain.WaitingRejected},
		domain.WaitingApproved: {ActionReject: domain.WaitingRejected, ActionConvert: domain.WaitingConverted},
	}

	for _, from := range domain.WaitingStatuses {
		for _, action := range []WaitingAction{ActionApprove, ActionReject, ActionConvert} {
			from, action := from, action
			t.Run(string(from)+"/"+string(action), func(t *testing.T) {
				t.Parallel()
				got, err := NextWaitingStatus(from, action)
				want, ok := allowed[from][action]
				if ok {
					require.NoError(t, err)
					assert.Equal(t, want, got)
					return
				}
				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			})
		}
	}
}

func TestNextWaitingStatus_TerminalStates(t *testing.T) {
	t.Parallel()
	for _, s := range domain.WaitingStatuses {
		if !s.IsTerminal() {
			continue
		}
		assert.Empty(t, WaitingActions(s), s)
	}
	assert.Equal(t, []WaitingAction{ActionApprove, ActionReject}, WaitingActions(domain.WaitingPending))
	assert.Equal(t, []WaitingAction{ActionReject, ActionConvert}, WaitingActions(domain.WaitingApproved))
}

func TestNextWaitingStatus_Unknown(t *testing.T) {
	t.Parallel()
	_, err := NextWaitingStatus("Archived", ActionApprove)
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)
}

func TestSetTicketStatus(t *testing.T) {
	t.Parallel()
	tk := domain.MaintenanceTicket{ID: 3, Status: domain.TicketPending}

	done, err := SetTicketStatus(tk, domain.TicketCompleted, testNow)
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)
	assert.Equal(t, testNow, *done.CompletedAt)
	assert.Equal(t, domain.TicketPending, tk.Status, "input unchanged")

	reopened, err := SetTicketStatus(done, domain.TicketInProgress, testNow)
	require.NoError(t, err)
	assert.Nil(t, reopened.CompletedAt)

	_, err = SetTicketStatus(tk, "Closed", testNow)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSetTodoStatus(t *testing.T) {
	t.Parallel()
	td, err := SetTodoStatus(domain.TodoTask{ID: 1, Status: domain.TodoOpen}, domain.TodoDone)
	require.NoError(t, err)
	assert.Equal(t, domain.TodoDone, td.Status)

	_, err = SetTodoStatus(td, "Blocked")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPayAndCancelInvoice(t *testing.T) {
	t.Parallel()

	paid, err := PayInvoice(invoice(1, domain.InvoicePending, -3, 100), testNow)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoicePaid, paid.Status)
	require.NotNil(t, paid.PaidAt)

	legacy, err := PayInvoice(invoice(2, domain.InvoiceOverdue, -3, 100), testNow)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoicePaid, legacy.Status)

	_, err = PayInvoice(paid, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	cancelled, err := CancelInvoice(invoice(3, domain.InvoicePending, 4, 100))
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceCancelled, cancelled.Status)

	_, err = CancelInvoice(paid)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = PayInvoice(cancelled, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
