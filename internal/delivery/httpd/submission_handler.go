package httpd

import (
	"net/http"

	"github.com/chojny89-del/grade/internal/models"
)

func (h *Handler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSubmissionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	id, err := h.submissionService.CreateSubmission(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":       "Submission created",
		"submission_id": id,
	})
}

func (h *Handler) GetSubmissions(w http.ResponseWriter, r *http.Request) {
	assignmentID := getIntQueryParam(r, "assignment_id")
	studentID := getIntQueryParam(r, "student_id")

	submissions, err := h.submissionService.ListSubmissions(r.Context(), assignmentID, studentID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, submissions)
}

func (h *Handler) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	submissionID, err := urlParamInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid submission id")
		return
	}

	if err := h.submissionService.DeleteSubmission(r.Context(), submissionID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Submission deleted successfully",
	})
}
