package event

// Field names one of the event attributes that can be updated in isolation. The value
// is the storage attribute name.
type Field string

const (
	FieldName        Field = "event_name"
	FieldLocation    Field = "location"
	FieldTime        Field = "time"
	FieldCapacity    Field = "capacity"
	FieldDuration    Field = "duration"
	FieldStatus      Field = "status"
	FieldDescription Field = "description"
	FieldTag2        Field = "tag_2"
)
