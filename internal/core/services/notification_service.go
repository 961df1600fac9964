package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kostdesk/internal/core/domain"
	"kostdesk/internal/pkg/metrics"
)

// LineNotifyURL is the LINE Notify endpoint
const LineNotifyURL = "https://notify-api.line.me/api/notify"

// NotificationService sends operator reminders through LINE Notify.
// Without a token it is disabled and every send is a no-op.
type NotificationService struct {
	lineNotifyToken string
	endpoint        string
	client          *http.Client
	logger          *slog.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(token string, logger *slog.Logger) *NotificationService {
	return &NotificationService{
		lineNotifyToken: token,
		endpoint:        LineNotifyURL,
		client:          &http.Client{Timeout: 10 * time.Second},
		logger:          orDefault(logger),
	}
}

// WithEndpoint points the service at another LINE Notify compatible URL
func (s *NotificationService) WithEndpoint(endpoint string, client *http.Client) *NotificationService {
	s.endpoint = endpoint
	if client != nil {
		s.client = client
	}
	return s
}

// IsEnabled checks if notification is enabled
func (s *NotificationService) IsEnabled() bool {
	return s.lineNotifyToken != ""
}

// sendLineNotify sends a message via LINE Notify
func (s *NotificationService) sendLineNotify(ctx context.Context, kind, message string) error {
	if !s.IsEnabled() {
		metrics.ObserveNotification(kind, "disabled")
		return nil
	}

	data := url.Values{}
	data.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+s.lineNotifyToken)

	resp, err := s.client.Do(req)
	if err != nil {
		metrics.ObserveNotification(kind, "error")
		return fmt.Errorf("line notify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ObserveNotification(kind, "error")
		return fmt.Errorf("line notify: unexpected status %d", resp.StatusCode)
	}
	metrics.ObserveNotification(kind, "sent")
	return nil
}

// NotifyExpiringContracts sends one message listing contracts about to end
func (s *NotificationService) NotifyExpiringContracts(ctx context.Context, contracts []domain.ContractView) error {
	if len(contracts) == 0 {
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\n📅 %d kontrak akan berakhir\n", len(contracts))
	for _, c := range contracts {
		fmt.Fprintf(&b, "\n🏠 Kamar %s: %s (%d hari lagi, %s)",
			c.RoomNumber, c.TenantName, c.DaysRemaining, c.EndDate.Format("2006-01-02"))
	}
	return s.sendLineNotify(ctx, "expiring_contracts", b.String())
}

// NotifyOverdueInvoices sends one message listing invoices past due
func (s *NotificationService) NotifyOverdueInvoices(ctx context.Context, invoices []domain.InvoiceView) error {
	if len(invoices) == 0 {
		return nil
	}
	var total domain.Money
	var b strings.Builder
	for _, inv := range invoices {
		total += inv.Amount
	}
	fmt.Fprintf(&b, "\n⚠️ %d tagihan terlambat (%s)\n", len(invoices), total.Format())
	for _, inv := range invoices {
		fmt.Fprintf(&b, "\n🧾 %s %s: %s (jatuh tempo %s)",
			inv.Number, inv.TenantName, inv.Amount.Format(), inv.DueDate.Format("2006-01-02"))
	}
	return s.sendLineNotify(ctx, "overdue_invoices", b.String())
}
