// Package views turns a schedule into month, week and day view models.
// Renderers are read-only: a click is represented by the workflow intent it
// would emit, never by a store call.
package views

import (
	"technician-dispatch/internal/calendar"
	"technician-dispatch/internal/domain"
	"technician-dispatch/internal/workflow"
)

type technicianDirectory interface {
	Names(ids []int64) []string
}

type locationDirectory interface {
	Get(id int64) (domain.Location, error)
}

// Entry is an assignment as shown inside a grid cell.
type Entry struct {
	AssignmentID  int64                   `json:"assignment_id"`
	Title         string                  `json:"title"`
	Status        domain.AssignmentStatus `json:"status"`
	StatusLabel   string                  `json:"status_label"`
	Priority      domain.Priority         `json:"priority"`
	PriorityLabel string                  `json:"priority_label"`
	Technicians   []string                `json:"technicians"`
	Location      string                  `json:"location"`

	View workflow.ViewIntent `json:"view"`
	Edit workflow.EditIntent `json:"edit"`
}

// DetailEntry is an assignment as shown by the day view.
type DetailEntry struct {
	Entry
	Description     string `json:"description"`
	Notes           string `json:"notes,omitempty"`
	LocationType    string `json:"location_type"`
	LocationAddress string `json:"location_address"`
}

// DayCell is one date of a month or week grid.
type DayCell struct {
	Date     domain.Date `json:"date"`
	InMonth  bool        `json:"in_month"`
	Today    bool        `json:"today"`
	Selected bool        `json:"selected"`
	Entries  []Entry     `json:"entries"`
	Total    int         `json:"total"`
	Hidden   int         `json:"hidden"`
	Expanded bool        `json:"expanded"`

	// Create is set on the selected month cell only.
	Create *workflow.CreateIntent `json:"create,omitempty"`
}

// MonthView is a six-week grid.
type MonthView struct {
	Title    string      `json:"title"`
	Anchor   domain.Date `json:"anchor"`
	Weekdays [7]string   `json:"weekdays"`
	Weeks    [][]DayCell `json:"weeks"`
	Prev     domain.Date `json:"prev"`
	Next     domain.Date `json:"next"`
}

// WeekView is a seven-column week.
type WeekView struct {
	Title  string      `json:"title"`
	Anchor domain.Date `json:"anchor"`
	Days   []DayCell   `json:"days"`
	Prev   domain.Date `json:"prev"`
	Next   domain.Date `json:"next"`
}

// DayView lists one day in full detail.
type DayView struct {
	Title   string        `json:"title"`
	Date    domain.Date   `json:"date"`
	Entries []DetailEntry `json:"entries"`
	Prev    domain.Date   `json:"prev"`
	Next    domain.Date   `json:"next"`
}

// Renderer builds view models. Today, when set, marks the current day.
type Renderer struct {
	Technicians technicianDirectory
	Locations   locationDirectory
	Caps        Caps
	Today       func() domain.Date
}

// NewRenderer creates a Renderer with the caps of layout.
func NewRenderer(techs technicianDirectory, locs locationDirectory, layout Layout) *Renderer {
	return &Renderer{
		Technicians: techs,
		Locations:   locs,
		Caps:        CapsFor(layout),
	}
}

// Month renders the grid around anchor. selected marks the cell that offers
// the create shortcut.
func (r *Renderer) Month(anchor, selected domain.Date, list []domain.Assignment, exp Expansion) MonthView {
	ix := calendar.NewIndex(list)
	days := calendar.MonthGrid(anchor)
	today := r.today()

	weeks := make([][]DayCell, 0, len(days)/calendar.WeekDays)
	for w := 0; w < len(days); w += calendar.WeekDays {
		row := make([]DayCell, 0, calendar.WeekDays)
		for _, d := range days[w : w+calendar.WeekDays] {
			cell := r.cell(d, ix.For(d), r.Caps.Month, exp)
			cell.InMonth = calendar.InMonth(d, anchor)
			cell.Today = d == today
			if d == selected {
				cell.Selected = true
				cell.Create = &workflow.CreateIntent{Date: d}
			}
			row = append(row, cell)
		}
		weeks = append(weeks, row)
	}

	return MonthView{
		Title:    calendar.Title(anchor, calendar.ViewMonth),
		Anchor:   anchor,
		Weekdays: WeekdaysShort,
		Weeks:    weeks,
		Prev:     calendar.Shift(anchor, calendar.ViewMonth, -1),
		Next:     calendar.Shift(anchor, calendar.ViewMonth, 1),
	}
}

// Week renders the week containing anchor.
func (r *Renderer) Week(anchor domain.Date, list []domain.Assignment, exp Expansion) WeekView {
	ix := calendar.NewIndex(list)
	today := r.today()

	days := calendar.WeekGrid(anchor)
	cells := make([]DayCell, 0, len(days))
	for _, d := range days {
		cell := r.cell(d, ix.For(d), r.Caps.Week, exp)
		cell.InMonth = true
		cell.Today = d == today
		cells = append(cells, cell)
	}

	return WeekView{
		Title:  calendar.Title(anchor, calendar.ViewWeek),
		Anchor: anchor,
		Days:   cells,
		Prev:   calendar.Shift(anchor, calendar.ViewWeek, -1),
		Next:   calendar.Shift(anchor, calendar.ViewWeek, 1),
	}
}

// Day renders every assignment on anchor.
func (r *Renderer) Day(anchor domain.Date, list []domain.Assignment) DayView {
	bucket := calendar.AssignmentsForDate(list, anchor)
	entries := make([]DetailEntry, 0, len(bucket))
	for _, a := range bucket {
		loc := r.location(a.LocationID)
		entries = append(entries, DetailEntry{
			Entry:           r.entry(a, loc),
			Description:     a.Description,
			Notes:           a.Notes,
			LocationType:    loc.Type,
			LocationAddress: loc.Address,
		})
	}
	return DayView{
		Title:   calendar.Title(anchor, calendar.ViewDay),
		Date:    anchor,
		Entries: entries,
		Prev:    calendar.Shift(anchor, calendar.ViewDay, -1),
		Next:    calendar.Shift(anchor, calendar.ViewDay, 1),
	}
}

func (r *Renderer) cell(d domain.Date, bucket []domain.Assignment, limit int, exp Expansion) DayCell {
	cell := DayCell{
		Date:     d,
		Total:    len(bucket),
		Expanded: exp.Expanded(d),
	}
	visible := bucket
	if !cell.Expanded && limit > 0 && len(bucket) > limit {
		visible = bucket[:limit]
		cell.Hidden = len(bucket) - limit
	}
	cell.Entries = make([]Entry, 0, len(visible))
	for _, a := range visible {
		cell.Entries = append(cell.Entries, r.entry(a, r.location(a.LocationID)))
	}
	return cell
}

func (r *Renderer) entry(a domain.Assignment, loc domain.Location) Entry {
	var names []string
	if r.Technicians != nil {
		names = r.Technicians.Names(a.TechnicianIDs)
	}
	return Entry{
		AssignmentID:  a.ID,
		Title:         a.Title,
		Status:        a.Status,
		StatusLabel:   StatusLabel(a.Status),
		Priority:      a.Priority,
		PriorityLabel: PriorityLabel(a.Priority),
		Technicians:   names,
		Location:      loc.Name,
		View:          workflow.ViewIntent{AssignmentID: a.ID},
		Edit:          workflow.EditIntent{AssignmentID: a.ID},
	}
}

func (r *Renderer) location(id int64) domain.Location {
	if r.Locations == nil {
		return domain.Location{}
	}
	loc, err := r.Locations.Get(id)
	if err != nil {
		return domain.Location{}
	}
	return loc
}

func (r *Renderer) today() domain.Date {
	if r.Today == nil {
		return domain.Date{}
	}
	return r.Today()
}
