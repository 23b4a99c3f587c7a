package httpd

import (
	"net/http"

	"github.com/chojny89-del/grade/internal/models"
)

func (h *Handler) CreateGrade(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGradeRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.gradeService.RecordGrade(r.Context(), &req); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Grade saved",
	})
}

func (h *Handler) CreateOverallGrade(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOverallGradeRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.gradeService.UpsertOverallGrade(r.Context(), &req); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Overall grade saved",
	})
}

func (h *Handler) GetStudentGrades(w http.ResponseWriter, r *http.Request) {
	studentID, err := urlParamInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid student id")
		return
	}

	grades, err := h.gradeService.GetStudentGrades(r.Context(), studentID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, grades)
}
