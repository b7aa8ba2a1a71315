package handlers

import (
	"net/http"

	"github.com/lehmann314159/nexuscrm/internal/models"
	"github.com/lehmann314159/nexuscrm/internal/workspace"
)

// WorkspaceHandler edits the selected site's change requests, content
// fields and SEO record.
type WorkspaceHandler struct {
	*Env
}

func NewWorkspaceHandler(env *Env) *WorkspaceHandler {
	return &WorkspaceHandler{Env: env}
}

func (h *WorkspaceHandler) Tab(w http.ResponseWriter, r *http.Request) {
	tab := workspace.Tab(r.PathValue("tab"))

	err := h.Sessions.Workspace(sessionID(r), func(ws *workspace.Workspace) error {
		return ws.SetTab(tab)
	})
	if err != nil {
		writeError(w, err)
		return
	}

	h.respondMain(w, r)
}

func (h *WorkspaceHandler) OpenRequest(w http.ResponseWriter, r *http.Request) {
	err := h.Sessions.Workspace(sessionID(r), func(ws *workspace.Workspace) error {
		ws.OpenRequestModal()
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	h.respondMain(w, r)
}

func draftFromForm(r *http.Request) workspace.Draft {
	return workspace.Draft{
		Title:       r.FormValue("title"),
		Location:    r.FormValue("location"),
		Description: r.FormValue("description"),
	}
}

func (h *WorkspaceHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.Sessions.Workspace(sessionID(r), func(ws *workspace.Workspace) error {
		ws.UpdateDraft(draftFromForm(r))
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SubmitRequest takes the modal's fields as the final draft and files it.
func (h *WorkspaceHandler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.ChangeRequest
	err := h.Sessions.Workspace(sessionID(r), func(ws *workspace.Workspace) error {
		ws.UpdateDraft(draftFromForm(r))
		req = ws.SubmitRequest()
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	h.Metrics.ChangeRequestsTotal.Inc()
	h.Log.Info().
		Str("request_id", req.ID).
		Str("site_id", req.SiteID).
		Str("title", req.Title).
		Msg("change request submitted")

	h.respondMain(w, r)
}

func (h *WorkspaceHandler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	err := h.Sessions.Workspace(sessionID(r), func(ws *workspace.Workspace) error {
		ws.CancelRequest()
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	h.respondMain(w, r)
}

func (h *WorkspaceHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")
	value := r.FormValue("value")

	err := h.Sessions.Workspace(sessionID(r), func(ws *workspace.Workspace) error {
		_, err := ws.UpdateField(id, value)
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if isHTMX(r) {
		w.WriteHeader(http.StatusNoContent)
	} else {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (h *WorkspaceHandler) SaveContent(w http.ResponseWriter, r *http.Request) {
	err := h.Sessions.Workspace(sessionID(r), func(ws *workspace.Workspace) error {
		ws.SaveAll()
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if isHTMX(r) {
		w.WriteHeader(http.StatusNoContent)
	} else {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// UpdateSEO stores one SEO field and, for title and description, answers
// with the refreshed length counter.
func (h *WorkspaceHandler) UpdateSEO(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	field := r.PathValue("field")
	value := r.FormValue("value")

	var (
		counter    workspace.Counter
		hasCounter bool
	)
	err := h.Sessions.Workspace(sessionID(r), func(ws *workspace.Workspace) error {
		if err := ws.UpdateSEO(field, value); err != nil {
			return err
		}
		counter, hasCounter = ws.CounterFor(field)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if !isHTMX(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if !hasCounter {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	data := map[string]interface{}{
		"Field":   field,
		"Counter": counter,
	}

	h.render(w, "seo-counter", data)
}
