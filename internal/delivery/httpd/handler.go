package httpd

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/chojny89-del/grade/internal/service"
)

type Handler struct {
	authService       service.AuthService
	classService      service.ClassService
	enrollmentService service.EnrollmentService
	assignmentService service.AssignmentService
	rubricService     service.RubricService
	submissionService service.SubmissionService
	gradeService      service.GradeService
	exportService     service.ExportService
	validate          *validator.Validate
	logger            zerolog.Logger
}

func NewHandler(
	authService service.AuthService,
	classService service.ClassService,
	enrollmentService service.EnrollmentService,
	assignmentService service.AssignmentService,
	rubricService service.RubricService,
	submissionService service.SubmissionService,
	gradeService service.GradeService,
	exportService service.ExportService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		authService:       authService,
		classService:      classService,
		enrollmentService: enrollmentService,
		assignmentService: assignmentService,
		rubricService:     rubricService,
		submissionService: submissionService,
		gradeService:      gradeService,
		exportService:     exportService,
		validate:          validator.New(),
		logger:            logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.HealthCheck)

	router.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
		})

		api.Route("/classes", func(r chi.Router) {
			r.Post("/", h.CreateClass)
			r.Get("/", h.GetClasses)
			r.Get("/{id}/students", h.GetClassStudents)
			r.Delete("/{id}", h.DeleteClass)
		})

		api.Route("/enrollments", func(r chi.Router) {
			r.Post("/", h.EnrollStudent)
			r.Delete("/{id}", h.DeleteEnrollment)
		})

		api.Get("/students/{id}/classes", h.GetStudentClasses)

		api.Route("/assignments", func(r chi.Router) {
			r.Post("/", h.CreateAssignment)
			r.Get("/", h.GetAssignments)
			r.Delete("/{id}", h.DeleteAssignment)
		})

		api.Route("/rubrics", func(r chi.Router) {
			r.Post("/", h.CreateRubric)
			r.Get("/", h.GetRubrics)
		})

		api.Route("/submissions", func(r chi.Router) {
			r.Post("/", h.CreateSubmission)
			r.Get("/", h.GetSubmissions)
			r.Delete("/{id}", h.DeleteSubmission)
		})

		api.Route("/grades", func(r chi.Router) {
			r.Post("/", h.CreateGrade)
			r.Get("/student/{id}", h.GetStudentGrades)
			r.Get("/export/{assignment_id}", h.ExportGrades)
		})

		api.Post("/overall-grades", h.CreateOverallGrade)
	})
}

// decodeAndValidate reads the JSON body into dst and runs struct
// validation; it writes the error response itself and reports whether the
// handler should continue.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}

	return true
}

// handleServiceError maps typed service errors to the flat, response-code
// driven taxonomy: missing rows are 404, conflicts and bad input are 400,
// bad credentials are 401, anything else is 500.
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound),
		errors.Is(err, service.ErrClassNotFound),
		errors.Is(err, service.ErrEnrollmentNotFound),
		errors.Is(err, service.ErrAssignmentNotFound),
		errors.Is(err, service.ErrSubmissionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyEnrolled),
		errors.Is(err, service.ErrAlreadySubmitted),
		errors.Is(err, service.ErrSubmissionGraded),
		errors.Is(err, service.ErrInvalidDueDate):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		h.logger.Error().Err(err).Msg("Service error")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func urlParamInt(r *http.Request, key string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, key))
}

func getIntQueryParam(r *http.Request, key string) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return 0
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}

	return intValue
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}
