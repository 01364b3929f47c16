package server

import (
	"net/http"

	"github.com/invopop/jsonschema"
)

// handleSchema publishes the JSON schema of the translation response so
// clients can validate payloads without hand-maintaining the shape.
func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	reflector := jsonschema.Reflector{DoNotReference: true}
	writeJSON(w, http.StatusOK, reflector.Reflect(TranslateResponse{}))
}
