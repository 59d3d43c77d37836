package projects

import "time"

const (
	// MaxTitleLen bounds a derived title.
	MaxTitleLen = 50

	// FallbackTitle is substituted when a title would otherwise be empty.
	FallbackTitle = "未命名项目"

	// PreviewLimit is how many projects the dashboard preview shows.
	PreviewLimit = 3
)

// Project is a canvas document owned by a single user. The id is generated
// by this service before the insert, never assigned by the database, so the
// editor URL can be built as soon as the row is durable.
type Project struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Title     string    `db:"title" json:"title"`
	Thumbnail *string   `db:"thumbnail" json:"thumbnail"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type CreateProjectRequest struct {
	Prompt string `json:"prompt"`
}

type CreateProjectResponse struct {
	Project   Project `json:"project"`
	EditorURL string  `json:"editor_url"`
}
