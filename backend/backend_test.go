package backend

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/rs/zerolog"
	"github.com/wartasekolah/warta/core"
	"github.com/wartasekolah/warta/mockstore"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	mock, err := mockstore.NewMemoryStore("")
	if err != nil {
		t.Fatal(err)
	}

	var db = &core.CoreDB{
		SessionManager: scs.New(),
		Log:            zerolog.Nop(),
	}

	return db.SessionManager.LoadAndSave(NewBackendRouter(db, mock, ""))
}

// The dashboard is mounted behind a prefix-stripping handler which prepends
// the mount point to every absolute Location header, so redirect targets
// must be router-relative.
func TestLoginGateRedirectsRouterRelative(t *testing.T) {

	handler := newTestRouter(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/login?next=%2Farticles" {
		t.Fatalf("location: got %q", got)
	}
}

func TestRootRedirectsRouterRelative(t *testing.T) {

	handler := newTestRouter(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/login" {
		t.Fatalf("location: got %q", got)
	}
}

// the member creation form posts to the users page itself
func TestUsersPageAcceptsPOST(t *testing.T) {

	handler := newTestRouter(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users", nil))

	if rec.Code == http.StatusMethodNotAllowed {
		t.Fatal("POST /users must be routed, got 405")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected the login gate, got %d", rec.Code)
	}
}
