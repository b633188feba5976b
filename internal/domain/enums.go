package domain

// Action represents the kind of mutation recorded in the change log.
type Action string

const (
	ActionCreated Action = "CREATED"
	ActionUpdated Action = "UPDATED"
	ActionDeleted Action = "DELETED"
)

func (a Action) String() string { return string(a) }

func (a Action) IsValid() bool {
	switch a {
	case ActionCreated, ActionUpdated, ActionDeleted:
		return true
	}
	return false
}

// ContentType identifies the kind of entity a Change or Shared row refers to.
type ContentType string

const (
	ContentTypeProject ContentType = "PROJECT"
	ContentTypeTask    ContentType = "TASK"
	ContentTypeTag     ContentType = "TAG"
	ContentTypeShared  ContentType = "SHARED"
)

func (c ContentType) String() string { return string(c) }

func (c ContentType) IsValid() bool {
	switch c {
	case ContentTypeProject, ContentTypeTask, ContentTypeTag, ContentTypeShared:
		return true
	}
	return false
}

// IsShareable reports whether entities of this type can be the target of a
// Shared grant. Change rows use the full set; grants only the shareable one.
func (c ContentType) IsShareable() bool {
	switch c {
	case ContentTypeProject, ContentTypeTask, ContentTypeTag:
		return true
	}
	return false
}
