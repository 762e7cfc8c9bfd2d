package handler

import (
	"errors"
	"net/http"
	"strconv"

	"study_tracker/internal/api/middleware"
	"study_tracker/internal/app/service"
	"study_tracker/internal/common"
	"study_tracker/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type MockTestHandler struct {
	mockTestService *service.MockTestService
}

func NewMockTestHandler(mockTestService *service.MockTestService) *MockTestHandler {
	return &MockTestHandler{mockTestService: mockTestService}
}

func (h *MockTestHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Put("/{testNumber}", h.update)
}

func (h *MockTestHandler) list(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	tests, err := h.mockTestService.List(r.Context(), userID)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string][]model.MockTest{"tests": tests})
}

func (h *MockTestHandler) update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	testNumber, err := strconv.Atoi(chi.URLParam(r, "testNumber"))
	if err != nil || testNumber < 1 || testNumber > model.MockTestCount {
		common.RespondWithError(w, http.StatusNotFound, "Mock test not found")
		return
	}

	var req service.MockTestUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	test, err := h.mockTestService.Update(r.Context(), userID, testNumber, req)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.RespondWithError(w, http.StatusNotFound, "Mock test not found")
			return
		}
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, test)
}
