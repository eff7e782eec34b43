// Package audit records what every auditable mutation changed. The recorder consumes
// typed operation values produced by the mutating services rather than inspecting
// serialized responses, and appends entries to an append-only log table.
package audit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gatherhub/event-manager/pkg/model"
)

// Kind identifies a mutating operation. The recorder only persists entries for kinds
// whose Auditable method reports true; deletes, membership changes and comments are
// deliberately not audited.
type Kind int

const (
	KindEventCreated Kind = iota + 1
	KindFieldUpdated
	KindEventReplaced
	KindEventDeleted
	KindMemberAdded
	KindMemberRemoved
	KindCommentAdded
	KindCommentUpdated
	KindCommentDeleted
)

// Auditable reports whether operations of this kind produce an audit log entry.
func (k Kind) Auditable() bool {
	return k == KindEventCreated || k == KindFieldUpdated
}

// Change describes a single field transition on an event.
type Change struct {
	Field    string
	Previous string
	Updated  string
}

// Operation is the outcome of a mutating call, handed to the recorder by the caller
// that invoked the mutation.
type Operation struct {
	Kind    Kind
	Action  string // "<HTTP verb> <path>"
	EventID string
	UserID  string // acting principal, best-effort

	Change  *Change      // set for KindFieldUpdated
	Created *model.Event // set for KindEventCreated
	Message string       // when set, used verbatim as the entry details
}

func (op Operation) details() string {
	if op.Message != "" {
		return op.Message
	}
	if op.Change != nil {
		return fmt.Sprintf("Event is updated from %s: %s to %s: %s.",
			op.Change.Field, op.Change.Previous, op.Change.Field, op.Change.Updated)
	}
	if op.Created != nil {
		return createdDetails(*op.Created)
	}
	return ""
}

func createdDetails(e model.Event) string {
	pairs := []string{
		"event_id: " + e.EventID,
		"group_id: " + e.GroupID,
		"organizer_id: " + e.OrganizerID,
		"event_name: " + e.EventName,
		"description: " + e.Description,
		"location: " + e.Location,
		"time: " + e.Time,
		"duration: " + strconv.Itoa(e.Duration),
		"capacity: " + strconv.Itoa(e.Capacity),
		"status: " + e.Status,
	}
	if e.Tag1 != "" {
		pairs = append(pairs, "tag_1: "+e.Tag1)
	}
	if e.Tag2 != "" {
		pairs = append(pairs, "tag_2: "+e.Tag2)
	}
	return strings.Join(pairs, ", ") + "."
}
