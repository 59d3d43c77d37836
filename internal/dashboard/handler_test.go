package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/rickai0118/OpenLovart/internal/credits"
	"github.com/rickai0118/OpenLovart/internal/logging"
	"github.com/rickai0118/OpenLovart/internal/projects"
)

// -------- test fakes --------

type fakeCreditsRepo struct {
	balance int64
	getErr  error

	initCalls int
}

func (f *fakeCreditsRepo) GetBalance(ctx context.Context, userID string) (int64, error) {
	if f.getErr != nil {
		return 0, f.getErr
	}
	return f.balance, nil
}

func (f *fakeCreditsRepo) InitBalance(ctx context.Context, userID string, balance int64) (int64, error) {
	f.initCalls++
	return balance, nil
}

type fakeProjectsRepo struct {
	list    []projects.Project
	listErr error
}

func (f *fakeProjectsRepo) Insert(ctx context.Context, p *projects.Project) (*projects.Project, error) {
	return p, nil
}

func (f *fakeProjectsRepo) ListByUser(ctx context.Context, userID string) ([]projects.Project, error) {
	return f.list, f.listErr
}

func newTestApp(cr credits.Repository, pr projects.Repository, userID string) *fiber.App {
	log := logging.New()
	h := &Handler{
		Credits:  credits.NewService(cr, log),
		Projects: projects.NewService(pr, log),
		Log:      log,
	}
	app := fiber.New()
	app.Get("/api/dashboard", func(c *fiber.Ctx) error {
		if userID != "" {
			c.Locals("user_id", userID)
		}
		return c.Next()
	}, h.Get)
	return app
}

func getDashboard(t *testing.T, app *fiber.App) Response {
	t.Helper()
	res, err := app.Test(httptest.NewRequest("GET", "/api/dashboard", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	var body Response
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return body
}

func TestDashboard_FirstLoadBootstrapsCredits(t *testing.T) {
	t.Parallel()

	cr := &fakeCreditsRepo{getErr: credits.ErrNotFound}
	pr := &fakeProjectsRepo{}
	app := newTestApp(cr, pr, "u1")

	body := getDashboard(t, app)
	require.NotNil(t, body.Credits)
	require.Equal(t, int64(credits.DefaultBalance), *body.Credits)
	require.Equal(t, 1, cr.initCalls)
	require.Empty(t, body.Projects)
	require.False(t, body.HasMore)
}

func TestDashboard_CreditsErrorDegradesToNull(t *testing.T) {
	t.Parallel()

	cr := &fakeCreditsRepo{getErr: errors.New("connection reset")}
	pr := &fakeProjectsRepo{list: []projects.Project{{ID: "a"}}}
	app := newTestApp(cr, pr, "u1")

	body := getDashboard(t, app)
	require.Nil(t, body.Credits, "credit failures must not fail the dashboard")
	require.Len(t, body.Projects, 1)
}

func TestDashboard_ListingErrorDegradesToEmpty(t *testing.T) {
	t.Parallel()

	cr := &fakeCreditsRepo{balance: 500}
	pr := &fakeProjectsRepo{listErr: errors.New("query failed")}
	app := newTestApp(cr, pr, "u1")

	body := getDashboard(t, app)
	require.NotNil(t, body.Credits)
	require.Equal(t, int64(500), *body.Credits)
	require.Empty(t, body.Projects)
}

func TestDashboard_PreviewBounded(t *testing.T) {
	t.Parallel()

	cr := &fakeCreditsRepo{balance: 1000}
	pr := &fakeProjectsRepo{list: []projects.Project{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"},
	}}
	app := newTestApp(cr, pr, "u1")

	body := getDashboard(t, app)
	require.Len(t, body.Projects, projects.PreviewLimit)
	require.True(t, body.HasMore)
}

func TestDashboard_Unauthenticated(t *testing.T) {
	t.Parallel()

	app := newTestApp(&fakeCreditsRepo{}, &fakeProjectsRepo{}, "")
	res, err := app.Test(httptest.NewRequest("GET", "/api/dashboard", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}
