package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/veloria/warranty-portal/internal/storage"
)

func (s *Server) handleCreateClaim(w http.ResponseWriter, r *http.Request) {
	var claim storage.Claim
	if err := json.NewDecoder(r.Body).Decode(&claim); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := s.storage.CreateClaim(r.Context(), claim)
	if err != nil {
		s.logger.Error("Error creating claim", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "An error occurred while creating the claim")
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListClaims(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	claims, err := s.storage.ListClaims(r.Context(), filter)
	if err != nil {
		s.logger.Error("Error fetching claims", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "An error occurred while fetching claims")
		return
	}

	respondJSON(w, http.StatusOK, claims)
}

func (s *Server) handleGetClaim(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	claim, err := s.storage.GetClaim(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Claim not found")
			return
		}
		s.logger.Error("Error fetching claim", zap.String("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "An error occurred while fetching the claim")
		return
	}

	respondJSON(w, http.StatusOK, claim)
}

func (s *Server) handleUpdateClaim(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var patch storage.ClaimPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := s.storage.UpdateClaim(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Claim not found")
			return
		}
		s.logger.Error("Error updating claim", zap.String("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "An error occurred while updating the claim")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleCreateReturn(w http.ResponseWriter, r *http.Request) {
	var ret storage.Return
	if err := json.NewDecoder(r.Body).Decode(&ret); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := s.storage.CreateReturn(r.Context(), ret)
	if err != nil {
		s.logger.Error("Error creating return", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "An error occurred while creating the return")
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListReturns(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	returns, err := s.storage.ListReturns(r.Context(), filter)
	if err != nil {
		s.logger.Error("Error fetching returns", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "An error occurred while fetching returns")
		return
	}

	respondJSON(w, http.StatusOK, returns)
}

func (s *Server) handleGetReturn(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ret, err := s.storage.GetReturn(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Return not found")
			return
		}
		s.logger.Error("Error fetching return", zap.String("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "An error occurred while fetching the return")
		return
	}

	respondJSON(w, http.StatusOK, ret)
}

func (s *Server) handleUpdateReturn(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var patch storage.ReturnPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := s.storage.UpdateReturn(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Return not found")
			return
		}
		s.logger.Error("Error updating return", zap.String("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "An error occurred while updating the return")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleFindCase(w http.ResponseWriter, r *http.Request) {
	orderNumber := r.URL.Query().Get("orderNumber")
	email := r.URL.Query().Get("email")

	if orderNumber == "" || email == "" {
		respondError(w, http.StatusBadRequest, "Missing orderNumber or email")
		return
	}

	found, err := s.storage.FindCase(r.Context(), orderNumber, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "No case found")
			return
		}
		s.logger.Error("Error fetching case", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "An error occurred while fetching the case")
		return
	}

	respondJSON(w, http.StatusOK, found)
}

func (s *Server) handleGetCase(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	found, err := s.storage.FindCaseByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Case not found")
			return
		}
		s.logger.Error("Error fetching case", zap.String("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "An error occurred while fetching the case")
		return
	}

	respondJSON(w, http.StatusOK, found)
}

func filterFromQuery(r *http.Request) storage.CaseFilter {
	return storage.CaseFilter{
		OrderNumber: r.URL.Query().Get("orderNumber"),
		Email:       r.URL.Query().Get("email"),
	}
}
