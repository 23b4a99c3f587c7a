package httpd

import (
	"net/http"

	"github.com/chojny89-del/grade/internal/models"
)

func (h *Handler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClassRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	id, err := h.classService.CreateClass(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Class created",
		"class_id": id,
	})
}

func (h *Handler) GetClasses(w http.ResponseWriter, r *http.Request) {
	instructorID := getIntQueryParam(r, "instructor_id")

	classes, err := h.classService.ListClasses(r.Context(), instructorID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, classes)
}

func (h *Handler) GetClassStudents(w http.ResponseWriter, r *http.Request) {
	classID, err := urlParamInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid class id")
		return
	}

	students, err := h.classService.ListClassStudents(r.Context(), classID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, students)
}

func (h *Handler) DeleteClass(w http.ResponseWriter, r *http.Request) {
	classID, err := urlParamInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid class id")
		return
	}

	if err := h.classService.DeleteClass(r.Context(), classID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Class deleted successfully",
	})
}
