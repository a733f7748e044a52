package domain

// TechnicianStatus represents the availability of a technician.
type TechnicianStatus string

// List of possible technician statuses
const (
	TechnicianActive  TechnicianStatus = "active"
	TechnicianBusy    TechnicianStatus = "busy"
	TechnicianOffline TechnicianStatus = "offline"
)

// Technician is read-only reference data owned by the technician directory.
type Technician struct {
	ID     int64            `json:"id"`
	Name   string           `json:"name"`
	Phone  string           `json:"phone"`
	Skill  string           `json:"skill"`
	Status TechnicianStatus `json:"status"`
}

// Label is the option text used by pickers, "name - skill".
func (t Technician) Label() string {
	if t.Skill == "" {
		return t.Name
	}
	return t.Name + " - " + t.Skill
}

// Location is read-only reference data for a service site.
type Location struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Type    string `json:"type"`
}
