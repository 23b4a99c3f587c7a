package httpd

import (
	"net/http"

	"github.com/chojny89-del/grade/internal/models"
)

func (h *Handler) EnrollStudent(w http.ResponseWriter, r *http.Request) {
	var req models.EnrollRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.enrollmentService.Enroll(r.Context(), &req); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Student enrolled successfully",
	})
}

func (h *Handler) DeleteEnrollment(w http.ResponseWriter, r *http.Request) {
	enrollmentID, err := urlParamInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid enrollment id")
		return
	}

	if err := h.enrollmentService.Unenroll(r.Context(), enrollmentID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Student unenrolled successfully",
	})
}

func (h *Handler) GetStudentClasses(w http.ResponseWriter, r *http.Request) {
	studentID, err := urlParamInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid student id")
		return
	}

	classes, err := h.enrollmentService.ListStudentClasses(r.Context(), studentID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, classes)
}
