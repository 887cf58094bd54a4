package models

// FacilityKind distinguishes the three occupancy-tracked resource types.
// The panels differ only in endpoint base and a couple of optional fields,
// so one Facility type covers all of them.
type FacilityKind string

const (
	FacilityLibrary   FacilityKind = "library"
	FacilityLab       FacilityKind = "lab"
	FacilityClassroom FacilityKind = "classroom"
)

// Facility is one occupancy-tracked campus resource (library, lab or
// classroom). Building/RoomNumber are empty for libraries and
// EquipmentStatus is only populated for labs.
type Facility struct {
	ID               int64        `json:"id"`
	Kind             FacilityKind `json:"-"`
	Name             string       `json:"name"`
	Building         string       `json:"building,omitempty"`
	RoomNumber       string       `json:"room_number,omitempty"`
	MaxCapacity      int          `json:"max_capacity"`
	CurrentOccupancy int          `json:"current_occupancy"`
	Open             bool         `json:"-"`
	EquipmentStatus  string       `json:"equipment_status,omitempty"`
}

// OccupancyPercent mirrors the backend's rounding: current/max scaled to
// 0..100, 0 when capacity is unset.
func (f Facility) OccupancyPercent() int {
	if f.MaxCapacity <= 0 {
		return 0
	}
	return int(float64(f.CurrentOccupancy)/float64(f.MaxCapacity)*100 + 0.5)
}

// OccupancyUpdate is the payload for an occupancy change. Non-manager
// submissions are queued server-side as pending update requests rather than
// applied directly.
type OccupancyUpdate struct {
	CurrentOccupancy int  `json:"current_occupancy"`
	Open             bool `json:"-"`
}
