package core

import (
	"encoding/gob"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
)

type Notification struct {
	Message string
	Style   string
}

func init() {
	gob.Register([]Notification{}) // required for storing Notifications in a session
}

var monthNamesID = strings.NewReplacer(
	"January", "Januari",
	"February", "Februari",
	"March", "Maret",
	"May", "Mei",
	"June", "Juni",
	"July", "Juli",
	"August", "Agustus",
	"October", "Oktober",
	"December", "Desember",
)

// A Request is created by CoreDB.NewRequest. It resolves the Viewer once and
// carries the session plumbing for handlers and templates.
type Request struct {
	db      *CoreDB // unexported, so it can't be accessed in templates
	Viewer  Viewer
	profile *Profile // nil if anonymous

	writer  http.ResponseWriter
	request *http.Request

	statusWritten bool
}

// NewRequest resolves the session user into a Viewer. Lookup errors degrade
// to the guest projection and never fail the request.
func (c *CoreDB) NewRequest(w http.ResponseWriter, httpreq *http.Request) *Request {

	var req = &Request{
		db:      c,
		writer:  w,
		request: httpreq,
	}

	if uid := c.SessionManager.GetInt(httpreq.Context(), "uid"); uid != 0 {
		req.Viewer = c.ResolveViewer(uid)
		if req.Viewer.LoggedIn {
			if p, err := c.ProfileDB.GetProfile(uid); err == nil {
				req.profile = p
			}
		}
	} else {
		req.Viewer = Guest()
	}

	return req
}

// Actor returns the authenticated profile, or nil.
func (req *Request) Actor() *Profile {
	return req.profile
}

func (req *Request) LoggedIn() bool {
	return req.Viewer.LoggedIn
}

// Danger adds a "danger" notification to the session.
func (req *Request) Danger(err error) {
	req.addNotification(err.Error(), "danger")
}

// Success adds a "success" notification to the session.
func (req *Request) Success(format string, args ...interface{}) {
	req.addNotification(fmt.Sprintf(format, args...), "success")
}

func (req *Request) addNotification(message, style string) {
	notifications, _ := req.db.SessionManager.Get(req.request.Context(), "notifications").([]Notification)
	notifications = append(notifications, Notification{message, style})
	req.db.SessionManager.Put(req.request.Context(), "notifications", notifications)
}

// RenderNotifications removes all notifications from the session and renders
// them into an HTML string. If the HTTP status had already been written, it
// does nothing.
func (req *Request) RenderNotifications() template.HTML {
	var r string
	if !req.statusWritten {
		notifications, _ := req.db.SessionManager.Pop(req.request.Context(), "notifications").([]Notification)
		for _, n := range notifications {
			r += `<div class="alert alert-` + n.Style + ` mt-3" role="alert">` + template.HTMLEscapeString(n.Message) + `</div>`
		}
	}
	return template.HTML(r)
}

// Cleanup destroys the session (re-setting the cookie with zero lifetime) if
// it has been modified and is empty now.
func (req *Request) Cleanup() {
	sessMan := req.db.SessionManager
	if sessMan.Status(req.request.Context()) == scs.Modified && len(sessMan.Keys(req.request.Context())) == 0 {
		_ = sessMan.Destroy(req.request.Context())
	}
}

// SeeOther sets the HTTP header to redirect to an URL.
func (req *Request) SeeOther(format string, args ...interface{}) {
	if req.statusWritten {
		return
	}
	http.Redirect(req.writer, req.request, fmt.Sprintf(format, args...), http.StatusSeeOther)
	req.statusWritten = true
}

// Login authenticates and stores the user id in the session.
func (req *Request) Login(username, password string) error {
	if req.LoggedIn() {
		return nil
	}
	p, err := req.db.ProfileDB.LoginProfile(NormalizeUsername(username), password)
	if err != nil {
		return err
	}
	req.profile = p
	req.Viewer = req.db.ResolveViewer(p.ID)
	req.db.SessionManager.Put(req.request.Context(), "uid", p.ID)
	req.Success("Selamat datang, %s!", p.Name)
	return nil
}

// Logout removes the user id from the session and calls Cleanup.
func (req *Request) Logout() {
	if req.LoggedIn() {
		req.db.SessionManager.Remove(req.request.Context(), "uid")
		req.profile = nil
		req.Viewer = Guest()
	}
	req.Cleanup()
}

// SafeNext cleans a "next" redirect target. Only absolute local paths are
// allowed, everything else falls back to the site root.
func SafeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}

// FormatDateTime renders a timestamp with Indonesian month names in the
// feed timezone.
func (req *Request) FormatDateTime(ts int64) string {
	if ts == 0 {
		return "-"
	}
	return monthNamesID.Replace(time.Unix(ts, 0).In(FeedLocation).Format("2 January 2006 15:04"))
}

// FormatDate renders just the civil date.
func (req *Request) FormatDate(ts int64) string {
	if ts == 0 {
		return "-"
	}
	return monthNamesID.Replace(time.Unix(ts, 0).In(FeedLocation).Format("2 January 2006"))
}
