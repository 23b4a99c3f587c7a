package service

import (
	"context"
	"sort"

	"github.com/chojny89-del/grade/internal/models"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	nextID int
	users  map[int]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (int, error) {
	r.nextID++
	stored := *user
	stored.UserID = r.nextID
	r.users[r.nextID] = &stored
	return r.nextID, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmailAndRole(_ context.Context, email, role string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email && user.Role == role {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsEmail(_ context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ExistsUniqueID(_ context.Context, uniqueID string) (bool, error) {
	for _, user := range r.users {
		if user.UniqueID == uniqueID {
			return true, nil
		}
	}
	return false, nil
}

type fakeClassRepo struct {
	nextID  int
	classes map[int]*models.Class
}

func newFakeClassRepo() *fakeClassRepo {
	return &fakeClassRepo{classes: make(map[int]*models.Class)}
}

func (r *fakeClassRepo) Create(_ context.Context, class *models.Class) (int, error) {
	r.nextID++
	stored := *class
	stored.ClassID = r.nextID
	r.classes[r.nextID] = &stored
	return r.nextID, nil
}

func (r *fakeClassRepo) GetByID(_ context.Context, id int) (*models.Class, error) {
	class, ok := r.classes[id]
	if !ok {
		return nil, nil
	}
	copied := *class
	return &copied, nil
}

func (r *fakeClassRepo) GetAll(_ context.Context) ([]models.Class, error) {
	classes := make([]models.Class, 0, len(r.classes))
	for _, class := range r.classes {
		classes = append(classes, *class)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].ClassID < classes[j].ClassID })
	return classes, nil
}

func (r *fakeClassRepo) GetByInstructorID(_ context.Context, instructorID int) ([]models.Class, error) {
	classes := make([]models.Class, 0)
	for _, class := range r.classes {
		if class.InstructorID == instructorID {
			classes = append(classes, *class)
		}
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].ClassID < classes[j].ClassID })
	return classes, nil
}

func (r *fakeClassRepo) Delete(_ context.Context, id int) error {
	delete(r.classes, id)
	return nil
}

type fakeEnrollmentRepo struct {
	nextID      int
	enrollments map[int]*models.Enrollment
	classes     *fakeClassRepo
}

func newFakeEnrollmentRepo(classes *fakeClassRepo) *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{
		enrollments: make(map[int]*models.Enrollment),
		classes:     classes,
	}
}

func (r *fakeEnrollmentRepo) Create(_ context.Context, enrollment *models.Enrollment) (int, error) {
	r.nextID++
	stored := *enrollment
	stored.EnrollmentID = r.nextID
	r.enrollments[r.nextID] = &stored
	return r.nextID, nil
}

func (r *fakeEnrollmentRepo) GetByID(_ context.Context, id int) (*models.Enrollment, error) {
	enrollment, ok := r.enrollments[id]
	if !ok {
		return nil, nil
	}
	copied := *enrollment
	return &copied, nil
}

func (r *fakeEnrollmentRepo) GetByClassAndStudent(_ context.Context, classID, studentID int) (*models.Enrollment, error) {
	for _, enrollment := range r.enrollments {
		if enrollment.ClassID == classID && enrollment.StudentID == studentID {
			copied := *enrollment
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeEnrollmentRepo) GetStudentsByClassID(_ context.Context, classID int) ([]models.EnrolledStudent, error) {
	students := make([]models.EnrolledStudent, 0)
	for _, enrollment := range r.enrollments {
		if enrollment.ClassID == classID {
			students = append(students, models.EnrolledStudent{
				EnrollmentID: enrollment.EnrollmentID,
				UserID:       enrollment.StudentID,
			})
		}
	}
	sort.Slice(students, func(i, j int) bool { return students[i].EnrollmentID < students[j].EnrollmentID })
	return students, nil
}

func (r *fakeEnrollmentRepo) GetClassesByStudentID(ctx context.Context, studentID int) ([]models.Class, error) {
	classes := make([]models.Class, 0)
	for _, enrollment := range r.enrollments {
		if enrollment.StudentID != studentID {
			continue
		}
		class, err := r.classes.GetByID(ctx, enrollment.ClassID)
		if err != nil {
			return nil, err
		}
		if class != nil {
			classes = append(classes, *class)
		}
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].ClassID < classes[j].ClassID })
	return classes, nil
}

func (r *fakeEnrollmentRepo) Delete(_ context.Context, id int) error {
	delete(r.enrollments, id)
	return nil
}

type fakeAssignmentRepo struct {
	nextID      int
	assignments map[int]*models.Assignment
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{assignments: make(map[int]*models.Assignment)}
}

func (r *fakeAssignmentRepo) Create(_ context.Context, assignment *models.Assignment) (int, error) {
	r.nextID++
	stored := *assignment
	stored.AssignmentID = r.nextID
	r.assignments[r.nextID] = &stored
	return r.nextID, nil
}

func (r *fakeAssignmentRepo) GetByID(_ context.Context, id int) (*models.Assignment, error) {
	assignment, ok := r.assignments[id]
	if !ok {
		return nil, nil
	}
	copied := *assignment
	return &copied, nil
}

func (r *fakeAssignmentRepo) List(_ context.Context, classID, instructorID int) ([]models.AssignmentWithClass, error) {
	assignments := make([]models.AssignmentWithClass, 0)
	for _, a := range r.assignments {
		if classID != 0 && a.ClassID != classID {
			continue
		}
		if instructorID != 0 && a.InstructorID != instructorID {
			continue
		}
		assignments = append(assignments, models.AssignmentWithClass{
			AssignmentID: a.AssignmentID,
			ClassID:      a.ClassID,
			Title:        a.Title,
			Description:  a.Description,
			MaxPoints:    a.MaxPoints,
		})
	}
	sort.Slice(assignments, func(i, j int) bool { return assignments[i].AssignmentID < assignments[j].AssignmentID })
	return assignments, nil
}

func (r *fakeAssignmentRepo) Delete(_ context.Context, id int) error {
	delete(r.assignments, id)
	return nil
}

func (r *fakeAssignmentRepo) Exists(_ context.Context, id int) (bool, error) {
	_, ok := r.assignments[id]
	return ok, nil
}

type fakeRubricRepo struct {
	nextID  int
	rubrics map[int]*models.Rubric
}

func newFakeRubricRepo() *fakeRubricRepo {
	return &fakeRubricRepo{rubrics: make(map[int]*models.Rubric)}
}

func (r *fakeRubricRepo) Create(_ context.Context, rubric *models.Rubric) (int, error) {
	r.nextID++
	stored := *rubric
	stored.RubricID = r.nextID
	r.rubrics[r.nextID] = &stored
	return r.nextID, nil
}

func (r *fakeRubricRepo) GetByID(_ context.Context, id int) (*models.Rubric, error) {
	rubric, ok := r.rubrics[id]
	if !ok {
		return nil, nil
	}
	copied := *rubric
	return &copied, nil
}

func (r *fakeRubricRepo) List(_ context.Context, assignmentID int) ([]models.Rubric, error) {
	rubrics := make([]models.Rubric, 0)
	for _, rubric := range r.rubrics {
		if assignmentID != 0 && rubric.AssignmentID != assignmentID {
			continue
		}
		rubrics = append(rubrics, *rubric)
	}
	sort.Slice(rubrics, func(i, j int) bool { return rubrics[i].RubricID < rubrics[j].RubricID })
	return rubrics, nil
}

type fakeSubmissionRepo struct {
	nextID      int
	submissions map[int]*models.Submission
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{submissions: make(map[int]*models.Submission)}
}

func (r *fakeSubmissionRepo) Create(_ context.Context, submission *models.Submission) (int, error) {
	r.nextID++
	stored := *submission
	stored.SubmissionID = r.nextID
	r.submissions[r.nextID] = &stored
	return r.nextID, nil
}

func (r *fakeSubmissionRepo) GetByID(_ context.Context, id int) (*models.Submission, error) {
	submission, ok := r.submissions[id]
	if !ok {
		return nil, nil
	}
	copied := *submission
	return &copied, nil
}

func (r *fakeSubmissionRepo) GetByAssignmentAndStudent(_ context.Context, assignmentID, studentID int) (*models.Submission, error) {
	for _, submission := range r.submissions {
		if submission.AssignmentID == assignmentID && submission.StudentID == studentID {
			copied := *submission
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeSubmissionRepo) List(_ context.Context, assignmentID, studentID int) ([]models.SubmissionWithDetails, error) {
	submissions := make([]models.SubmissionWithDetails, 0)
	for _, s := range r.submissions {
		if assignmentID != 0 && s.AssignmentID != assignmentID {
			continue
		}
		if studentID != 0 && s.StudentID != studentID {
			continue
		}
		submissions = append(submissions, models.SubmissionWithDetails{
			SubmissionID: s.SubmissionID,
			AssignmentID: s.AssignmentID,
			StudentID:    s.StudentID,
			Status:       s.Status,
		})
	}
	sort.Slice(submissions, func(i, j int) bool { return submissions[i].SubmissionID < submissions[j].SubmissionID })
	return submissions, nil
}

func (r *fakeSubmissionRepo) GetGradedByStudentID(_ context.Context, studentID int) ([]models.Submission, error) {
	submissions := make([]models.Submission, 0)
	for _, submission := range r.submissions {
		if submission.StudentID == studentID && submission.Status == models.SubmissionStatusGraded.String() {
			submissions = append(submissions, *submission)
		}
	}
	sort.Slice(submissions, func(i, j int) bool { return submissions[i].SubmissionID < submissions[j].SubmissionID })
	return submissions, nil
}

func (r *fakeSubmissionRepo) UpdateStatus(_ context.Context, id int, status string) error {
	if submission, ok := r.submissions[id]; ok {
		submission.Status = status
	}
	return nil
}

func (r *fakeSubmissionRepo) Delete(_ context.Context, id int) error {
	delete(r.submissions, id)
	return nil
}

type fakeGradeRepo struct {
	nextID        int
	nextOverallID int
	grades        []models.Grade
	overalls      map[int]*models.OverallGrade
	rubricRepo    *fakeRubricRepo
	submissions   *fakeSubmissionRepo
	users         *fakeUserRepo
}

func newFakeGradeRepo(rubricRepo *fakeRubricRepo, submissions *fakeSubmissionRepo, users *fakeUserRepo) *fakeGradeRepo {
	return &fakeGradeRepo{
		overalls:    make(map[int]*models.OverallGrade),
		rubricRepo:  rubricRepo,
		submissions: submissions,
		users:       users,
	}
}

func (r *fakeGradeRepo) Create(_ context.Context, grade *models.Grade) (int, error) {
	r.nextID++
	stored := *grade
	stored.GradeID = r.nextID
	r.grades = append(r.grades, stored)
	return r.nextID, nil
}

func (r *fakeGradeRepo) GetRubricLinesBySubmissionID(ctx context.Context, submissionID int, fallbackMaxPoints float64) ([]models.RubricGradeLine, error) {
	lines := make([]models.RubricGradeLine, 0)
	for _, grade := range r.grades {
		if grade.SubmissionID != submissionID {
			continue
		}
		line := models.RubricGradeLine{
			CriterionName: "Overall",
			MaxPoints:     fallbackMaxPoints,
			PointsEarned:  grade.PointsEarned,
			Feedback:      grade.Feedback,
		}
		if grade.RubricID != nil {
			rubric, err := r.rubricRepo.GetByID(ctx, *grade.RubricID)
			if err != nil {
				return nil, err
			}
			if rubric != nil {
				line.CriterionName = rubric.CriterionName
				line.MaxPoints = rubric.MaxPoints
			}
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (r *fakeGradeRepo) GetOverallBySubmissionID(_ context.Context, submissionID int) (*models.OverallGrade, error) {
	overall, ok := r.overalls[submissionID]
	if !ok {
		return nil, nil
	}
	copied := *overall
	return &copied, nil
}

func (r *fakeGradeRepo) CreateOverall(_ context.Context, grade *models.OverallGrade) (int, error) {
	r.nextOverallID++
	stored := *grade
	stored.OverallGradeID = r.nextOverallID
	r.overalls[grade.SubmissionID] = &stored
	return r.nextOverallID, nil
}

func (r *fakeGradeRepo) UpdateOverall(_ context.Context, grade *models.OverallGrade) error {
	existing, ok := r.overalls[grade.SubmissionID]
	if !ok {
		return nil
	}
	existing.TotalPoints = grade.TotalPoints
	existing.LetterGrade = grade.LetterGrade
	existing.OverallFeedback = grade.OverallFeedback
	existing.GradedBy = grade.GradedBy
	existing.GradedAt = grade.GradedAt
	return nil
}

func (r *fakeGradeRepo) GetExportRowsByAssignmentID(ctx context.Context, assignmentID int) ([]models.ExportRow, error) {
	rows := make([]models.ExportRow, 0)

	submissions := make([]models.Submission, 0)
	for _, submission := range r.submissions.submissions {
		if submission.AssignmentID == assignmentID && submission.Status == models.SubmissionStatusGraded.String() {
			submissions = append(submissions, *submission)
		}
	}
	sort.Slice(submissions, func(i, j int) bool { return submissions[i].SubmissionID < submissions[j].SubmissionID })

	for _, submission := range submissions {
		user, err := r.users.GetByID(ctx, submission.StudentID)
		if err != nil {
			return nil, err
		}
		overall, ok := r.overalls[submission.SubmissionID]
		if user == nil || !ok {
			continue
		}
		rows = append(rows, models.ExportRow{
			StudentUniqueID: user.UniqueID,
			StudentName:     user.FullName(),
			Email:           user.Email,
			TotalPoints:     overall.TotalPoints,
			OverallFeedback: overall.OverallFeedback,
			GradedAt:        overall.GradedAt,
		})
	}

	return rows, nil
}
