package notifications

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestList_PinnedFirst(t *testing.T) {
	t.Parallel()

	items := List()
	require.NotEmpty(t, items)

	seenUnpinned := false
	for _, n := range items {
		if !n.IsPinned {
			seenUnpinned = true
			continue
		}
		require.False(t, seenUnpinned, "pinned entries must precede unpinned ones")
	}
}

func TestList_PinnedHaveNoTimeText(t *testing.T) {
	t.Parallel()

	for _, n := range List() {
		if n.IsPinned {
			require.Empty(t, n.TimeText)
		}
	}
}

func TestList_CopyIsIsolated(t *testing.T) {
	t.Parallel()

	a := List()
	a[0].Title = "mutated"
	b := List()
	require.NotEqual(t, "mutated", b[0].Title)
}

func TestHandler(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Get("/api/notifications", Handler)

	res, err := app.Test(httptest.NewRequest("GET", "/api/notifications", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var body struct {
		Items []Notification `json:"items"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Len(t, body.Items, len(List()))
}
