package equipment

const (
	StatusOperational = "Operational"
	StatusMaintenance = "Maintenance"
	StatusOutOfOrder  = "Out of Order"
)

// IssueStatuses are the statuses a logged issue may set.
var IssueStatuses = []string{StatusMaintenance, StatusOutOfOrder}

// AllStatuses are the statuses a maintenance update may set.
var AllStatuses = []string{StatusOperational, StatusMaintenance, StatusOutOfOrder}

type Equipment struct {
	ID               int     `db:"equipment_id" json:"equipment_id"`
	Name             string  `db:"equipment_name" json:"equipment_name"`
	RoomID           *int    `db:"room_id" json:"room_id,omitempty"`
	RoomName         *string `db:"room_name" json:"room_name,omitempty"`
	Status           string  `db:"status" json:"status"`
	LastMaintenance  *string `db:"last_maintenance" json:"last_maintenance,omitempty"`
	NextMaintenance  *string `db:"next_maintenance" json:"next_maintenance,omitempty"`
	MaintenanceNotes *string `db:"maintenance_notes" json:"maintenance_notes,omitempty"`

	// NoteEntries is the parsed form of MaintenanceNotes.
	NoteEntries []NoteEntry `db:"-" json:"note_entries,omitempty"`
}

type LogIssueRequest struct {
	Description string `json:"description" binding:"required"`
	Status      string `json:"status"`
}

type UpdateMaintenanceRequest struct {
	LastMaintenance *string `json:"last_maintenance"`
	NextMaintenance *string `json:"next_maintenance"`
	Status          string  `json:"status"`
}

func validStatus(status string, allowed []string) bool {
	for _, s := range allowed {
		if status == s {
			return true
		}
	}
	return false
}
