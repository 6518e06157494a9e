package blueprint

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cespare/xxhash/v2"
	"github.com/gorilla/mux"
)

const (
	tenantPath    = "/api/v1/{tenantId}/actions"
	blueprintPath = tenantPath + "/blueprints/{blueprintId}"
)

// RegisterRoutes mounts the blueprint endpoints on r. Routes are registered on r itself
// so a method mismatch answers 405 rather than 404.
func (s *Service) RegisterRoutes(r *mux.Router) {
	r.HandleFunc(tenantPath+"/graphs", s.HandleGetGraphs).Methods(http.MethodGet)
	r.HandleFunc(blueprintPath+"/graph", s.HandleGetGraph).Methods(http.MethodGet)
	r.HandleFunc(blueprintPath+"/forms", s.HandleGetForms).Methods(http.MethodGet)
	r.HandleFunc(blueprintPath+"/forms/{nodeId}/dependencies", s.HandleGetDependencies).Methods(http.MethodGet)
	r.HandleFunc(blueprintPath+"/forms/{nodeId}/fields", s.HandleGetFields).Methods(http.MethodGet)
	r.HandleFunc(blueprintPath+"/forms/{nodeId}/prefill-sources", s.HandleGetPrefillSources).Methods(http.MethodGet)
}

func (s *Service) HandleGetGraph(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slog.Debug("Returning blueprint graph", "tenant id", vars["tenantId"], "blueprint id", vars["blueprintId"])

	graph, err := s.Graph(r.Context(), vars["tenantId"], vars["blueprintId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, graph)
}

func (s *Service) HandleGetGraphs(w http.ResponseWriter, r *http.Request) {
	tenantID := mux.Vars(r)["tenantId"]
	blueprintIDs := r.URL.Query()["blueprint"]
	slog.Debug("Returning blueprint graphs", "tenant id", tenantID, "blueprint ids", blueprintIDs)

	graphs, err := s.Graphs(r.Context(), tenantID, blueprintIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, graphs)
}

func (s *Service) HandleGetForms(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	forms, err := s.FormNodes(r.Context(), vars["tenantId"], vars["blueprintId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, forms)
}

type dependenciesResponse struct {
	NodeID        string   `json:"nodeId"`
	Prerequisites []string `json:"prerequisites"`
}

func (s *Service) HandleGetDependencies(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	deps, err := s.Dependencies(r.Context(), vars["tenantId"], vars["blueprintId"], vars["nodeId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, dependenciesResponse{NodeID: vars["nodeId"], Prerequisites: deps})
}

func (s *Service) HandleGetFields(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	fields, err := s.Fields(r.Context(), vars["tenantId"], vars["blueprintId"], vars["nodeId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, fields)
}

func (s *Service) HandleGetPrefillSources(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slog.Debug("Resolving prefill sources", "blueprint id", vars["blueprintId"], "node id", vars["nodeId"])

	sources, err := s.PrefillSources(r.Context(), vars["tenantId"], vars["blueprintId"], vars["nodeId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, sources)
}

// statusFor maps an error to its http status and the error exposed to the caller.
func statusFor(err error) (int, error) {
	switch {
	case errors.Is(err, ErrMissingBlueprintID):
		return http.StatusBadRequest, ErrMissingBlueprintID
	case errors.Is(err, ErrFormNodeNotFound):
		return http.StatusNotFound, ErrFormNodeNotFound
	case errors.Is(err, ErrNotFormNode):
		return http.StatusUnprocessableEntity, ErrNotFormNode
	case errors.Is(err, ErrFetchFailed), errors.Is(err, ErrUnexpectedStatus), errors.Is(err, ErrResponseDecodeFailed):
		return http.StatusBadGateway, ErrFetchFailed
	case errors.Is(err, ErrFormDefinitionsUnavailable):
		return http.StatusServiceUnavailable, ErrFormDefinitionsUnavailable
	default:
		return http.StatusInternalServerError, ErrInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, public := statusFor(err)
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed", "status", status, "error", err)
	} else {
		slog.Debug("Request rejected", "status", status, "error", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(errorToJSON(public)))
}

// writeJSON writes v with an ETag computed from the body, answering 304 when the client already has it.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		slog.Error("Failed to marshal response", "error", err)
		writeError(w, fmt.Errorf("%w: %w", ErrMarshalFailed, err))
		return
	}

	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(jsonBytes))
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(jsonBytes)
}
