package server

import "net/http"

// NewRouter maps the HTTP surface onto the handler. All AI endpoints are
// POST-only; the ledger endpoints are GET-only.
func NewRouter(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()

	post := func(fn http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			fn(w, r)
		}
	}
	get := func(fn http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			fn(w, r)
		}
	}

	mux.HandleFunc("/api/extract-pdf", post(h.ExtractPDF))
	mux.HandleFunc("/api/transcribe", post(h.Transcribe))
	mux.HandleFunc("/api/summarize", post(h.Summarize))
	mux.HandleFunc("/api/jobs", get(h.ListJobs))
	mux.HandleFunc("/api/jobs/export", get(h.ExportJobs))
	mux.HandleFunc("/healthz", get(h.Healthz))

	return mux
}
