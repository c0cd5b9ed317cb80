package tg

// InputChecklist represents a checklist to be sent.
type InputChecklist struct {
	Title                    string               `json:"title"`
	ParseMode                *ParseMode           `json:"parse_mode,omitempty"`
	TitleEntities            []MessageEntity      `json:"title_entities,omitempty"`
	Tasks                    []InputChecklistTask `json:"tasks"`
	OthersCanAddTasks        bool                 `json:"others_can_add_tasks,omitempty"`
	OthersCanMarkTasksAsDone bool                 `json:"others_can_mark_tasks_as_done,omitempty"`
}

// InputChecklistTask represents a task in a checklist to be sent.
type InputChecklistTask struct {
	ID           int             `json:"id"`
	Text         string          `json:"text"`
	ParseMode    *ParseMode      `json:"parse_mode,omitempty"`
	TextEntities []MessageEntity `json:"text_entities,omitempty"`
}

// Checklist represents a checklist in a received message.
type Checklist struct {
	Title                    string          `json:"title"`
	TitleEntities            []MessageEntity `json:"title_entities,omitempty"`
	Tasks                    []ChecklistTask `json:"tasks"`
	OthersCanAddTasks        bool            `json:"others_can_add_tasks,omitempty"`
	OthersCanMarkTasksAsDone bool            `json:"others_can_mark_tasks_as_done,omitempty"`
}

// Done returns the number of completed tasks.
func (c *Checklist) Done() int {
	n := 0
	for _, t := range c.Tasks {
		if t.IsDone() {
			n++
		}
	}
	return n
}

// ChecklistTask represents a task in a received checklist.
type ChecklistTask struct {
	ID              int             `json:"id"`
	Text            string          `json:"text"`
	TextEntities    []MessageEntity `json:"text_entities,omitempty"`
	CompletedByUser *User           `json:"completed_by_user,omitempty"`
	CompletionDate  *int64          `json:"completion_date,omitempty"`
}

// IsDone reports whether the task has been completed.
func (t ChecklistTask) IsDone() bool {
	return t.CompletionDate != nil && *t.CompletionDate != 0
}

// ChecklistTasksDone is a service message about checklist tasks marked as
// done or not done.
type ChecklistTasksDone struct {
	ChecklistMessage       *Message `json:"checklist_message,omitempty"`
	MarkedAsDoneTaskIDs    []int    `json:"marked_as_done_task_ids,omitempty"`
	MarkedAsNotDoneTaskIDs []int    `json:"marked_as_not_done_task_ids,omitempty"`
}

// ChecklistTasksAdded is a service message about tasks added to a checklist.
type ChecklistTasksAdded struct {
	ChecklistMessage *Message        `json:"checklist_message,omitempty"`
	Tasks            []ChecklistTask `json:"tasks"`
}
