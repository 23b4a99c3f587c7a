package httpd

import (
	"net/http"

	"github.com/chojny89-del/grade/internal/models"
)

func (h *Handler) CreateRubric(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRubricRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	id, err := h.rubricService.CreateRubric(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":   "Rubric criterion created",
		"rubric_id": id,
	})
}

func (h *Handler) GetRubrics(w http.ResponseWriter, r *http.Request) {
	assignmentID := getIntQueryParam(r, "assignment_id")

	rubrics, err := h.rubricService.ListRubrics(r.Context(), assignmentID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rubrics)
}
