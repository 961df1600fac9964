package lifecycle

import (
	"strconv"
	"strings"

	"kostdesk/internal/core/domain"
)

// FilterAll is the filter value meaning "no constraint".
const FilterAll = "all"

// Record is the searchable projection of an entity: free-text fields for the
// query and named categorical fields for filters.
type Record struct {
	Text   []string
	Fields map[string]string
}

// Matches reports whether r satisfies the text query and every filter.
// The query matches case-insensitively as a substring of any text field.
// A filter with an empty or "all" value is ignored; a filter naming a field
// the record lacks, or whose value is empty, does not match.
func Matches(r Record, query string, filters map[string]string) bool {
	if q := strings.TrimSpace(query); q != "" {
		q = strings.ToLower(q)
		found := false
		for _, t := range r.Text {
			if strings.Contains(strings.ToLower(t), q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for field, want := range filters {
		if want == "" || strings.EqualFold(want, FilterAll) {
			continue
		}
		got, ok := r.Fields[field]
		if !ok || got == "" || !strings.EqualFold(got, want) {
			return false
		}
	}
	return true
}

// Filter returns the items matching query and filters, preserving order.
func Filter[T any](items []T, toRecord func(T) Record, query string, filters map[string]string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if Matches(toRecord(it), query, filters) {
			out = append(out, it)
		}
	}
	return out
}

func id(v uint) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(v), 10)
}

// ContractRecord searches tenant, room and notes; filters on status, property and room.
func ContractRecord(v domain.ContractView) Record {
	return Record{
		Text: []string{v.TenantName, v.TenantPhone, v.RoomNumber, v.Notes},
		Fields: map[string]string{
			"status":      string(v.Status),
			"property_id": id(v.PropertyID),
			"room_id":     id(v.RoomID),
		},
	}
}

// InvoiceRecord searches number, tenant and description; filters on derived status.
func InvoiceRecord(v domain.InvoiceView) Record {
	return Record{
		Text: []string{v.Number, v.TenantName, v.Description},
		Fields: map[string]string{
			"status":      string(v.DerivedStatus),
			"contract_id": id(v.ContractID),
		},
	}
}

func TicketRecord(t domain.MaintenanceTicket) Record {
	return Record{
		Text: []string{t.Title, t.Description, t.Location, t.AssignedTo},
		Fields: map[string]string{
			"status":      string(t.Status),
			"priority":    string(t.Priority),
			"category":    t.Category,
			"assigned_to": t.AssignedTo,
			"room_id":     id(t.RoomID),
		},
	}
}

func TodoRecord(t domain.TodoTask) Record {
	return Record{
		Text: []string{t.Title, t.Description, t.AssignedTo},
		Fields: map[string]string{
			"status":      string(t.Status),
			"priority":    string(t.Priority),
			"assigned_to": t.AssignedTo,
		},
	}
}

func WaitingRecord(e domain.WaitingListEntry) Record {
	return Record{
		Text: []string{e.Name, e.Phone, e.Email, e.Notes},
		Fields: map[string]string{
			"status":      string(e.Status),
			"property_id": id(e.PreferredPropertyID),
			"room_type":   e.PreferredRoomType,
		},
	}
}

func CashFlowRecord(e domain.CashFlowEntry) Record {
	return Record{
		Text: []string{e.Description, e.Category},
		Fields: map[string]string{
			"kind":     string(e.Kind),
			"status":   string(e.Status),
			"category": e.Category,
		},
	}
}

func RoomRecord(v domain.RoomView) Record {
	return Record{
		Text: []string{v.Number, v.Type},
		Fields: map[string]string{
			"occupancy":   string(v.Occupancy),
			"type":        v.Type,
			"property_id": id(v.PropertyID),
		},
	}
}

func UserRecord(u domain.User) Record {
	return Record{
		Text: []string{u.Username, u.Email, u.FullName},
		Fields: map[string]string{
			"role": string(u.Role),
		},
	}
}
