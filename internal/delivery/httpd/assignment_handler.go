package httpd

import (
	"net/http"

	"github.com/chojny89-del/grade/internal/models"
)

func (h *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAssignmentRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	id, err := h.assignmentService.CreateAssignment(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":       "Assignment created",
		"assignment_id": id,
	})
}

func (h *Handler) GetAssignments(w http.ResponseWriter, r *http.Request) {
	classID := getIntQueryParam(r, "class_id")
	instructorID := getIntQueryParam(r, "instructor_id")

	assignments, err := h.assignmentService.ListAssignments(r.Context(), classID, instructorID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, assignments)
}

func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := urlParamInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid assignment id")
		return
	}

	if err := h.assignmentService.DeleteAssignment(r.Context(), assignmentID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Assignment deleted successfully",
	})
}
