// Package report generates a human-readable dump of the grading
// database. It runs as its own process (the `report` subcommand), shares
// the schema with the service, and performs no writes.
package report

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
)

const separator = "--------------------------------------------------------------------------------"

type Generator struct {
	db *sql.DB
	w  io.Writer
}

func New(db *sql.DB, w io.Writer) *Generator {
	return &Generator{db: db, w: w}
}

func (g *Generator) Run(ctx context.Context) error {
	sections := []func(context.Context) error{
		g.users,
		g.classes,
		g.enrollments,
		g.assignments,
		g.rubrics,
		g.submissions,
		g.grades,
		g.overallGrades,
		g.summary,
	}

	fmt.Fprintln(g.w, "ASSIGNMENT GRADING SYSTEM - DATABASE REPORT")

	for _, section := range sections {
		if err := section(ctx); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) header(title string) {
	fmt.Fprintf(g.w, "\n%s\n  %s\n%s\n", strings.Repeat("=", 80), title, strings.Repeat("=", 80))
}

func (g *Generator) users(ctx context.Context) error {
	g.header("1. USERS (Instructors & Students)")

	rows, err := g.db.QueryContext(ctx, `
		SELECT user_id, unique_id, email, first_name, last_name, role, created_at
		FROM users
		ORDER BY user_id
	`)
	if err != nil {
		return fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var (
			userID                                     int
			uniqueID, email, firstName, lastName, role string
			createdAt                                  sql.NullTime
		)
		if err := rows.Scan(&userID, &uniqueID, &email, &firstName, &lastName, &role, &createdAt); err != nil {
			return err
		}
		fmt.Fprintf(g.w, "  %d | %s | %s | %s %s | %s\n", userID, uniqueID, email, firstName, lastName, role)
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if count == 0 {
		fmt.Fprintln(g.w, "  (No users)")
		return nil
	}
	fmt.Fprintf(g.w, "\n  Total users: %d\n", count)

	roleRows, err := g.db.QueryContext(ctx, `SELECT role, COUNT(*) FROM users GROUP BY role`)
	if err != nil {
		return fmt.Errorf("failed to count roles: %w", err)
	}
	defer roleRows.Close()

	fmt.Fprintln(g.w, "  Summary:")
	for roleRows.Next() {
		var role string
		var n int
		if err := roleRows.Scan(&role, &n); err != nil {
			return err
		}
		fmt.Fprintf(g.w, "    - %ss: %d\n", role, n)
	}
	return roleRows.Err()
}

func (g *Generator) classes(ctx context.Context) error {
	g.header("2. CLASSES")

	rows, err := g.db.QueryContext(ctx, `
		SELECT c.class_id, c.class_code, c.class_name, c.description,
		       u.first_name || ' ' || u.last_name as instructor_name
		FROM classes c
		JOIN users u ON c.instructor_id = u.user_id
		ORDER BY c.class_id
	`)
	if err != nil {
		return fmt.Errorf("failed to query classes: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var classID int
		var code, name, description, instructor string
		if err := rows.Scan(&classID, &code, &name, &description, &instructor); err != nil {
			return err
		}
		fmt.Fprintf(g.w, "\n  Class ID: %d\n  Code: %s\n  Name: %s\n  Description: %s\n  Instructor: %s\n%s\n",
			classID, code, name, description, instructor, separator)
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if count == 0 {
		fmt.Fprintln(g.w, "  (No classes)")
	} else {
		fmt.Fprintf(g.w, "\n  Total classes: %d\n", count)
	}
	return nil
}

func (g *Generator) enrollments(ctx context.Context) error {
	g.header("3. ENROLLMENTS")

	rows, err := g.db.QueryContext(ctx, `
		SELECT c.class_code, c.class_name,
		       u.unique_id, u.first_name || ' ' || u.last_name as student_name
		FROM enrollments e
		JOIN classes c ON e.class_id = c.class_id
		JOIN users u ON e.student_id = u.user_id
		ORDER BY e.enrollment_id
	`)
	if err != nil {
		return fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var code, name, uniqueID, student string
		if err := rows.Scan(&code, &name, &uniqueID, &student); err != nil {
			return err
		}
		fmt.Fprintf(g.w, "  %s - %s | Student: %s (%s)\n", code, name, student, uniqueID)
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if count == 0 {
		fmt.Fprintln(g.w, "  (No enrollments)")
	} else {
		fmt.Fprintf(g.w, "\n  Total enrollments: %d\n", count)
	}
	return nil
}

func (g *Generator) assignments(ctx context.Context) error {
	g.header("4. ASSIGNMENTS")

	rows, err := g.db.QueryContext(ctx, `
		SELECT a.assignment_id, c.class_code, a.title, a.description,
		       a.due_date, a.max_points,
		       u.first_name || ' ' || u.last_name as instructor_name
		FROM assignments a
		JOIN classes c ON a.class_id = c.class_id
		JOIN users u ON a.instructor_id = u.user_id
		ORDER BY a.assignment_id
	`)
	if err != nil {
		return fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var assignmentID int
		var code, title, description, instructor string
		var dueDate sql.NullTime
		var maxPoints float64
		if err := rows.Scan(&assignmentID, &code, &title, &description, &dueDate, &maxPoints, &instructor); err != nil {
			return err
		}
		due := ""
		if dueDate.Valid {
			due = dueDate.Time.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(g.w, "\n  Assignment ID: %d\n  Class: %s\n  Title: %s\n  Description: %s\n  Due Date: %s\n  Max Points: %g\n  Created by: %s\n%s\n",
			assignmentID, code, title, description, due, maxPoints, instructor, separator)
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if count == 0 {
		fmt.Fprintln(g.w, "  (No assignments)")
	} else {
		fmt.Fprintf(g.w, "\n  Total assignments: %d\n", count)
	}
	return nil
}

func (g *Generator) rubrics(ctx context.Context) error {
	g.header("5. RUBRIC CRITERIA")

	rows, err := g.db.QueryContext(ctx, `
		SELECT a.title, r.criterion_name, r.max_points, r.description
		FROM rubrics r
		JOIN assignments a ON r.assignment_id = a.assignment_id
		ORDER BY r.assignment_id, r.rubric_id
	`)
	if err != nil {
		return fmt.Errorf("failed to query rubrics: %w", err)
	}
	defer rows.Close()

	count := 0
	current := ""
	for rows.Next() {
		var title, criterion, description string
		var maxPoints float64
		if err := rows.Scan(&title, &criterion, &maxPoints, &description); err != nil {
			return err
		}
		if current != title {
			current = title
			fmt.Fprintf(g.w, "\n  Assignment: %s\n", current)
		}
		fmt.Fprintf(g.w, "    - %s (%g pts): %s\n", criterion, maxPoints, description)
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if count == 0 {
		fmt.Fprintln(g.w, "  (No rubric criteria)")
	} else {
		fmt.Fprintf(g.w, "\n  Total rubric criteria: %d\n", count)
	}
	return nil
}

func (g *Generator) submissions(ctx context.Context) error {
	g.header("6. STUDENT SUBMISSIONS")

	rows, err := g.db.QueryContext(ctx, `
		SELECT a.title, u.unique_id,
		       u.first_name || ' ' || u.last_name as student_name,
		       s.status, s.submitted_at
		FROM submissions s
		JOIN assignments a ON s.assignment_id = a.assignment_id
		JOIN users u ON s.student_id = u.user_id
		ORDER BY s.submission_id
	`)
	if err != nil {
		return fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var title, uniqueID, student, status string
		var submittedAt sql.NullTime
		if err := rows.Scan(&title, &uniqueID, &student, &status, &submittedAt); err != nil {
			return err
		}
		when := ""
		if submittedAt.Valid {
			when = submittedAt.Time.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(g.w, "  %s | %s (%s) | Status: %s | %s\n", title, student, uniqueID, status, when)
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if count == 0 {
		fmt.Fprintln(g.w, "  (No submissions)")
		return nil
	}
	fmt.Fprintf(g.w, "\n  Total submissions: %d\n", count)

	statusRows, err := g.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM submissions GROUP BY status`)
	if err != nil {
		return fmt.Errorf("failed to count statuses: %w", err)
	}
	defer statusRows.Close()

	fmt.Fprintln(g.w, "  Status breakdown:")
	for statusRows.Next() {
		var status string
		var n int
		if err := statusRows.Scan(&status, &n); err != nil {
			return err
		}
		fmt.Fprintf(g.w, "    - %s: %d\n", status, n)
	}
	return statusRows.Err()
}

func (g *Generator) grades(ctx context.Context) error {
	g.header("7. GRADES (Per Criterion)")

	rows, err := g.db.QueryContext(ctx, `
		SELECT g.submission_id, COALESCE(r.criterion_name, 'Overall'),
		       g.points_earned, g.graded_at
		FROM grades g
		JOIN submissions s ON g.submission_id = s.submission_id
		LEFT JOIN rubrics r ON g.rubric_id = r.rubric_id
		ORDER BY g.grade_id
		LIMIT 20
	`)
	if err != nil {
		return fmt.Errorf("failed to query grades: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var submissionID int
		var criterion string
		var points float64
		var gradedAt sql.NullTime
		if err := rows.Scan(&submissionID, &criterion, &points, &gradedAt); err != nil {
			return err
		}
		when := ""
		if gradedAt.Valid {
			when = gradedAt.Time.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(g.w, "  Submission %d | %s: %g pts | %s\n", submissionID, criterion, points, when)
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if count == 0 {
		fmt.Fprintln(g.w, "  (No grades)")
		return nil
	}

	var total int
	if err := g.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM grades`).Scan(&total); err != nil {
		return fmt.Errorf("failed to count grades: %w", err)
	}
	fmt.Fprintf(g.w, "\n  Total grade entries: %d\n", total)
	if total > 20 {
		fmt.Fprintln(g.w, "  (Showing first 20)")
	}
	return nil
}

func (g *Generator) overallGrades(ctx context.Context) error {
	g.header("8. OVERALL GRADES & FEEDBACK")

	rows, err := g.db.QueryContext(ctx, `
		SELECT a.title,
		       u.first_name || ' ' || u.last_name as student_name,
		       og.total_points, a.max_points,
		       COALESCE(og.overall_feedback, ''), og.graded_at
		FROM overall_grades og
		JOIN submissions s ON og.submission_id = s.submission_id
		JOIN assignments a ON s.assignment_id = a.assignment_id
		JOIN users u ON s.student_id = u.user_id
		ORDER BY og.overall_grade_id
	`)
	if err != nil {
		return fmt.Errorf("failed to query overall grades: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var title, student, feedback string
		var totalPoints, maxPoints float64
		var gradedAt sql.NullTime
		if err := rows.Scan(&title, &student, &totalPoints, &maxPoints, &feedback, &gradedAt); err != nil {
			return err
		}
		percentage := 0.0
		if maxPoints > 0 {
			percentage = totalPoints / maxPoints * 100
		}
		when := ""
		if gradedAt.Valid {
			when = gradedAt.Time.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(g.w, "\n  Assignment: %s\n  Student: %s\n  Grade: %g/%g (%.1f%%)\n  Feedback: %s\n  Graded: %s\n%s\n",
			title, student, totalPoints, maxPoints, percentage, feedback, when, separator)
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if count == 0 {
		fmt.Fprintln(g.w, "  (No overall grades)")
	} else {
		fmt.Fprintf(g.w, "\n  Total graded submissions: %d\n", count)
	}
	return nil
}

func (g *Generator) summary(ctx context.Context) error {
	g.header("DATABASE SUMMARY")

	counts := []struct {
		label string
		query string
	}{
		{"Instructors", `SELECT COUNT(*) FROM users WHERE role = 'instructor'`},
		{"Students", `SELECT COUNT(*) FROM users WHERE role = 'student'`},
		{"Classes", `SELECT COUNT(*) FROM classes`},
		{"Assignments", `SELECT COUNT(*) FROM assignments`},
		{"Submissions", `SELECT COUNT(*) FROM submissions`},
		{"Graded", `SELECT COUNT(*) FROM overall_grades`},
	}

	values := make(map[string]int, len(counts))
	fmt.Fprintln(g.w, "  Total records:")
	for _, c := range counts {
		var n int
		if err := g.db.QueryRowContext(ctx, c.query).Scan(&n); err != nil {
			return fmt.Errorf("failed to count %s: %w", strings.ToLower(c.label), err)
		}
		values[c.label] = n
		fmt.Fprintf(g.w, "    - %s: %d\n", c.label, n)
	}
	fmt.Fprintf(g.w, "    - Pending: %d\n", values["Submissions"]-values["Graded"])

	return nil
}
