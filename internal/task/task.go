// Package task defines the task record, its variant fields, and the
// validation rules for constructing and updating one.
package task

import (
	"encoding/json"
	"strings"
	"time"
)

// DueDateLayout is the accepted input format for due dates:
// 24-hour, no seconds, no timezone.
const DueDateLayout = "2006-01-02 15:04"

// dueDateFileLayout is how due dates encode in the backing file:
// a local date-time without zone offset.
const dueDateFileLayout = "2006-01-02T15:04:05"

// DueDate is a date-time without a timezone.
type DueDate struct {
	time.Time
}

// ParseDueDate parses due-date text in DueDateLayout.
func ParseDueDate(text string) (DueDate, error) {
	t, err := time.Parse(DueDateLayout, text)
	if err != nil {
		return DueDate{}, &DueDateError{Text: text, Err: err}
	}
	return DueDate{Time: t}, nil
}

// MarshalJSON encodes the due date without a zone offset.
func (d DueDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dueDateFileLayout))
}

// UnmarshalJSON decodes the zone-less encoding.
func (d *DueDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(dueDateFileLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Task represents a single to-do item.
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	DueDate     *DueDate  `json:"due_date"`
	Priority    Priority  `json:"priority"`
	Category    Category  `json:"category"`
	Tags        []string  `json:"tags"`
}

// New constructs a validated task. The id is assigned by the caller
// and never changes afterwards; completed starts false and createdAt
// is the current local time. Priority text outside the four levels
// and unparseable due-date text fail construction.
func New(id int, title string, description, dueText *string, priorityText, categoryText string, tagsText *string) (*Task, error) {
	priority, err := ParsePriority(priorityText)
	if err != nil {
		return nil, err
	}

	category := ParseCategory(categoryText)

	var due *DueDate
	if dueText != nil {
		d, err := ParseDueDate(*dueText)
		if err != nil {
			return nil, err
		}
		due = &d
	}

	return &Task{
		ID:          id,
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   time.Now(),
		DueDate:     due,
		Priority:    priority,
		Category:    category,
		Tags:        SplitTags(tagsText),
	}, nil
}

// SplitTags splits comma-separated tag text, trimming surrounding
// whitespace from each piece. Empty pieces and duplicates are kept in
// order as given. Nil input yields an empty slice.
func SplitTags(text *string) []string {
	if text == nil {
		return []string{}
	}
	parts := strings.Split(*text, ",")
	tags := make([]string, len(parts))
	for i, p := range parts {
		tags[i] = strings.TrimSpace(p)
	}
	return tags
}

// Updates carries optional field changes for an edit. Nil fields are
// left untouched; the due, priority, category, and tags fields take
// the same text forms as New.
type Updates struct {
	Title       *string
	Description *string
	Due         *string
	Priority    *string
	Category    *string
	Tags        *string
}

// Apply validates every supplied field against a draft copy, then
// commits all of them in one step. A validation failure leaves the
// task unchanged. The id and creation timestamp are never touched.
func (t *Task) Apply(u Updates) error {
	draft := *t

	if u.Title != nil {
		draft.Title = *u.Title
	}
	if u.Description != nil {
		desc := *u.Description
		draft.Description = &desc
	}
	if u.Due != nil {
		d, err := ParseDueDate(*u.Due)
		if err != nil {
			return err
		}
		draft.DueDate = &d
	}
	if u.Priority != nil {
		p, err := ParsePriority(*u.Priority)
		if err != nil {
			return err
		}
		draft.Priority = p
	}
	if u.Category != nil {
		draft.Category = ParseCategory(*u.Category)
	}
	if u.Tags != nil {
		draft.Tags = SplitTags(u.Tags)
	}

	*t = draft
	return nil
}
