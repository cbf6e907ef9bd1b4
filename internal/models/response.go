package models

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type UploadResponse struct {
	UploadID string            `json:"upload_id"`
	FileName string            `json:"file_name"`
	ImageURL string            `json:"image_url"`
	Rejected []UploadRejection `json:"rejected,omitempty"`
}

// UploadRejection describes one file from the batch that failed validation.
type UploadRejection struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

type SermonNoteResponse struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	OCRText     string    `json:"ocr_text,omitempty"`
	Markdown    string    `json:"markdown,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SermonNoteListResponse struct {
	SermonNotes []SermonNoteResponse `json:"sermon_notes"`
}

type TaskResponse struct {
	ID          string        `json:"id"`
	WorkspaceID string        `json:"workspace_id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Status      string        `json:"status"`
	Priority    string        `json:"priority,omitempty"`
	DueDate     *time.Time    `json:"due_date,omitempty"`
	TaskTypeID  string        `json:"task_type_id,omitempty"`
	Tags        []TagResponse `json:"tags,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// BoardColumn is one kanban column: a status and the tasks currently in it.
type BoardColumn struct {
	Status string         `json:"status"`
	Tasks  []TaskResponse `json:"tasks"`
}

type BoardResponse struct {
	Columns []BoardColumn `json:"columns"`
}

type WorkspaceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WorkspaceListResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
}

type TagResponse struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id,omitempty"`
	Name        string    `json:"name"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type TagListResponse struct {
	Tags []TagResponse `json:"tags"`
}

type TaskTypeResponse struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type TaskTypeListResponse struct {
	TaskTypes []TaskTypeResponse `json:"task_types"`
}

type NoteResponse struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Title       string    `json:"title"`
	Body        string    `json:"body,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type NoteListResponse struct {
	Notes []NoteResponse `json:"notes"`
}

type PostResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Body        string     `json:"body,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
}

type SubscriptionResponse struct {
	ID        string    `json:"id"`
	Endpoint  string    `json:"endpoint"`
	CreatedAt time.Time `json:"created_at"`
}
