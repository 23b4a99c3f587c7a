package httpd

import (
	"fmt"
	"net/http"
)

// ExportGrades streams the assignment's grade sheet as a CSV attachment.
func (h *Handler) ExportGrades(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := urlParamInt(r, "assignment_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid assignment id")
		return
	}

	filename, data, err := h.exportService.ExportGradesCSV(r.Context(), assignmentID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
