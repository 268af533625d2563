// ABOUTME: Server-rendered dashboard for scanning topics and reading briefings
// ABOUTME: Keeps one current view per browser, keyed by a view_id cookie

package web

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"pakgov-intel/api/handlers"
	"pakgov-intel/core/domain"
	coreerrors "pakgov-intel/core/errors"
	"pakgov-intel/core/interfaces"
	"pakgov-intel/core/presets"
	"pakgov-intel/core/view"
	"pakgov-intel/pkg/featureflags"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ViewCookie names the cookie holding the client's view id
const ViewCookie = "view_id"

const genericErrorMessage = "An error occurred while fetching intelligence."

// Dashboard serves the HTML pages
type Dashboard struct {
	reports interfaces.ReportRequester
	views   interfaces.ViewStore
	flags   featureflags.Manager
	logger  interfaces.Logger
	tmpl    *template.Template
	now     func() time.Time
}

// NewDashboard creates a dashboard; it fails only if the embedded templates
// do not parse
func NewDashboard(reports interfaces.ReportRequester, views interfaces.ViewStore, flags featureflags.Manager, logger interfaces.Logger) (*Dashboard, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		reports: reports,
		views:   views,
		flags:   flags,
		logger:  logger,
		tmpl:    tmpl,
		now:     time.Now,
	}, nil
}

// RegisterRoutes mounts the dashboard on router
func (d *Dashboard) RegisterRoutes(router chi.Router) {
	router.Get("/", d.Index)
	router.Post("/scan", d.Scan)
	router.Post("/reset", d.Reset)
	router.Get("/export.md", d.Export)
}

// Index renders the search page and the current view, if any
func (d *Dashboard) Index(w http.ResponseWriter, r *http.Request) {
	data := d.basePage(r)
	if v := d.currentView(r); v != nil {
		data.View = newViewData(v)
		data.Query = v.Topic
	}
	d.render(w, http.StatusOK, data)
}

// Scan requests a report for the submitted topic or preset. Success replaces
// the current view; failure shows a banner and no result.
func (d *Dashboard) Scan(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		d.fail(w, r, "", &coreerrors.ValidationError{Field: "form", Message: "invalid form submission"})
		return
	}

	query, label, err := resolveScan(r.PostForm.Get("topic"), r.PostForm.Get("preset"))
	if err != nil {
		d.fail(w, r, label, err)
		return
	}
	if strings.TrimSpace(query) == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	result, err := d.reports.RequestReport(r.Context(), query)
	if err != nil {
		d.fail(w, r, label, err)
		return
	}

	id := d.ensureViewID(w, r)
	current := &domain.View{
		Topic:     label,
		Result:    *result,
		CreatedAt: d.now(),
	}
	if err := d.views.Replace(r.Context(), id, current); err != nil {
		d.logError("Failed to store view", map[string]interface{}{
			"error": err.Error(),
		})
		// The result is still good; show it without persisting
		data := d.basePage(r)
		data.Query = label
		data.View = newViewData(current)
		d.render(w, http.StatusOK, data)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Reset discards the current view
func (d *Dashboard) Reset(w http.ResponseWriter, r *http.Request) {
	if id, ok := viewID(r); ok {
		if err := d.views.Reset(r.Context(), id); err != nil {
			d.logWarn("Failed to reset view", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Export downloads the current view as markdown
func (d *Dashboard) Export(w http.ResponseWriter, r *http.Request) {
	if d.flags != nil && !d.flags.IsEnabled(r.Context(), featureflags.MarkdownExportEnabled) {
		http.NotFound(w, r)
		return
	}

	v := d.currentView(r)
	if v == nil {
		http.Error(w, "No briefing to export", http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, v); err != nil {
		d.logError("Failed to build markdown export", map[string]interface{}{
			"error": err.Error(),
		})
		http.Error(w, "Failed to build export", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename(v.Topic)+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// resolveScan returns the query to send and the label to show. A preset
// sends its query but is shown by its label.
func resolveScan(topic, presetID string) (query, label string, err error) {
	if id := strings.TrimSpace(presetID); id != "" {
		p, ok := presets.Find(id)
		if !ok {
			return "", "", &coreerrors.ValidationError{Field: "preset", Message: "unknown preset"}
		}
		return p.Query, p.Label, nil
	}
	return topic, strings.TrimSpace(topic), nil
}

// fail renders the page with an error banner. The current view is dropped
// so a stale result is never shown next to the error.
func (d *Dashboard) fail(w http.ResponseWriter, r *http.Request, query string, err error) {
	status := handlers.StatusFor(err)
	fields := map[string]interface{}{
		"status": status,
		"error":  err.Error(),
	}
	if status >= http.StatusInternalServerError {
		d.logError("Scan failed", fields)
	} else {
		d.logWarn("Scan rejected", fields)
	}

	if id, ok := viewID(r); ok {
		if resetErr := d.views.Reset(r.Context(), id); resetErr != nil {
			d.logWarn("Failed to reset view", map[string]interface{}{
				"error": resetErr.Error(),
			})
		}
	}

	data := d.basePage(r)
	data.Query = query
	data.Error = errorMessage(err)
	d.render(w, status, data)
}

// errorMessage is the banner text for err
func errorMessage(err error) string {
	var cfgErr *coreerrors.ConfigurationError
	var valErr *coreerrors.ValidationError
	switch {
	case errors.As(err, &cfgErr):
		return cfgErr.Message
	case errors.As(err, &valErr):
		return valErr.Message
	}
	if apiErr, ok := coreerrors.AsExternalAPI(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return genericErrorMessage
}

func (d *Dashboard) basePage(r *http.Request) pageData {
	return pageData{
		Presets:       presets.List(),
		ExportEnabled: d.flags == nil || d.flags.IsEnabled(r.Context(), featureflags.MarkdownExportEnabled),
	}
}

func (d *Dashboard) currentView(r *http.Request) *domain.View {
	id, ok := viewID(r)
	if !ok {
		return nil
	}
	v, err := d.views.Current(r.Context(), id)
	if err != nil {
		if !coreerrors.IsNotFound(err) {
			d.logWarn("Failed to load view", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil
	}
	return v
}

func (d *Dashboard) render(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := d.tmpl.ExecuteTemplate(&buf, "dashboard", data); err != nil {
		d.logError("Failed to render template", map[string]interface{}{
			"error": err.Error(),
		})
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// viewID returns the client's view id if the cookie holds a valid one
func viewID(r *http.Request) (string, bool) {
	c, err := r.Cookie(ViewCookie)
	if err != nil {
		return "", false
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return "", false
	}
	return c.Value, true
}

// ensureViewID returns the existing view id or issues a new cookie
func (d *Dashboard) ensureViewID(w http.ResponseWriter, r *http.Request) string {
	if id, ok := viewID(r); ok {
		return id
	}
	id := view.NewID()
	http.SetCookie(w, &http.Cookie{
		Name:     ViewCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (d *Dashboard) logWarn(msg string, fields map[string]interface{}) {
	if d.logger != nil {
		d.logger.Warn(msg, fields)
	}
}

func (d *Dashboard) logError(msg string, fields map[string]interface{}) {
	if d.logger != nil {
		d.logger.Error(msg, fields)
	}
}
