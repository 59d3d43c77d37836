package projects

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/rickai0118/OpenLovart/internal/logging"
)

// ErrEmptyPrompt rejects whitespace-only prompts before any store access.
var ErrEmptyPrompt = errors.New("projects: prompt is empty")

// EditorPath is the canvas editor the dashboard hands off to after a
// successful create.
const EditorPath = "/canvas"

type Service struct {
	repo Repository
	log  logging.Logger
}

func NewService(repo Repository, log logging.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// DeriveTitle returns the first MaxTitleLen runes of the trimmed prompt.
// An empty result falls back to FallbackTitle so a title is never empty.
func DeriveTitle(prompt string) string {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return FallbackTitle
	}
	runes := []rune(trimmed)
	if len(runes) > MaxTitleLen {
		return string(runes[:MaxTitleLen])
	}
	return trimmed
}

// EditorURL builds the canvas hand-off target carrying the new project id
// and the original, full prompt text.
func EditorURL(projectID, prompt string) string {
	q := url.Values{}
	q.Set("id", projectID)
	q.Set("prompt", prompt)
	return EditorPath + "?" + q.Encode()
}

// CreateFromPrompt validates the prompt, generates the project id, inserts
// the row, and only then builds the editor URL. The insert is durable
// before the URL exists, so a caller navigating on it never races the row.
func (s *Service) CreateFromPrompt(ctx context.Context, userID, prompt string) (*Project, string, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, "", ErrEmptyPrompt
	}

	p := &Project{
		ID:     uuid.NewString(),
		UserID: userID,
		Title:  DeriveTitle(prompt),
	}

	// The store's message is surfaced to the user verbatim, so the error
	// is returned unwrapped.
	inserted, err := s.repo.Insert(ctx, p)
	if err != nil {
		return nil, "", err
	}

	s.log.Info(ctx, "project created", "id", inserted.ID, "user_id", userID)
	return inserted, EditorURL(inserted.ID, prompt), nil
}

// List returns the user's full project list, most recently updated first.
func (s *Service) List(ctx context.Context, userID string) ([]Project, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Preview returns at most PreviewLimit projects for the dashboard plus
// whether more exist.
func (s *Service) Preview(ctx context.Context, userID string) ([]Project, bool, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if len(list) > PreviewLimit {
		return list[:PreviewLimit], true, nil
	}
	return list, false, nil
}
