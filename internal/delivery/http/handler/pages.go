package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"practice-scheduler/internal/delivery/http/middleware"
	"practice-scheduler/internal/delivery/http/view"
	"practice-scheduler/internal/domain/rule"
	"practice-scheduler/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Pages is shared by the admin handlers: rendering, redirects and flash
// messages for the current session.
type Pages struct {
	renderer *view.Renderer
	flash    service.FlashService
	log      *logrus.Logger
}

func NewPages(renderer *view.Renderer, flash service.FlashService, log *logrus.Logger) *Pages {
	return &Pages{
		renderer: renderer,
		flash:    flash,
		log:      log,
	}
}

// Render shows a page together with any flash messages left for the session.
func (p *Pages) Render(w http.ResponseWriter, r *http.Request, status int, name, title string, messages []string, data any) {
	page := view.Page{
		Title:  title,
		Errors: messages,
		Data:   data,
	}

	if sessionID, ok := middleware.GetSessionIDFromContext(r.Context()); ok {
		flashes, err := p.flash.Pop(r.Context(), sessionID)
		if err != nil {
			p.log.Warnf("Failed to pop flash messages: %+v", err)
		}
		page.Flash = flashes
	}

	p.renderer.Render(w, r, status, name, page)
}

func (p *Pages) Redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusFound)
}

// Flash leaves messages for the next page the session renders.
func (p *Pages) Flash(r *http.Request, messages ...string) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		return
	}
	if err := p.flash.Add(r.Context(), sessionID, messages...); err != nil {
		p.log.Warnf("Failed to add flash messages: %+v", err)
	}
}

// NotFound sends the browser back to a listing with a message naming the
// record it asked for.
func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request, table rule.Table, id, listURL string) {
	p.Flash(r, fmt.Sprintf("Hmm..that %s (id = %s) could not be found.", table.Singular(), id))
	p.Redirect(w, r, listURL)
}

func (p *Pages) ServerError(w http.ResponseWriter, r *http.Request, err error) {
	p.log.Errorf("Failed to handle %s %s: %+v", r.Method, r.URL.Path, err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func (p *Pages) BadRequest(w http.ResponseWriter, r *http.Request, err error) {
	p.log.Warnf("Bad request %s %s: %+v", r.Method, r.URL.Path, err)
	http.Error(w, "Bad request", http.StatusBadRequest)
}

// pathID reads the {id} route variable. raw is returned as well so a
// malformed id can still be echoed back to the user.
func pathID(r *http.Request) (id int, raw string, ok bool) {
	raw = mux.Vars(r)["id"]
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, raw, false
	}
	return id, raw, true
}
