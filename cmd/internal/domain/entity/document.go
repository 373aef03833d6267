package entity

// SchemaVersion is the version written by this build. Documents stored
// without a version field decode as version 0.
const SchemaVersion = 1

// Document is the whole persisted state. It is read and rewritten as a unit.
type Document struct {
	Version      int                         `json:"version"`
	Days         map[string][]*Appointment   `json:"days"`
	Availability map[string]*DayAvailability `json:"availability"`
	Logs         *Logs                       `json:"logs"`
	Perks        map[string]*Person          `json:"perks"`
	PerkCodes    map[string]*PerkCode        `json:"perkCodes"`
	Posts        []*Post                     `json:"posts"`
}

func NewDocument() *Document {
	return &Document{
		Version:      SchemaVersion,
		Days:         map[string][]*Appointment{},
		Availability: map[string]*DayAvailability{},
		Logs:         &Logs{Cancellations: []*CancellationRecord{}},
		Perks:        map[string]*Person{},
		PerkCodes:    map[string]*PerkCode{},
		Posts:        []*Post{},
	}
}

// FindPost returns the post with the given id, or nil.
func (d *Document) FindPost(id string) *Post {
	for _, p := range d.Posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}
