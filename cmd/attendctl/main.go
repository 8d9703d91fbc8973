// attendctl is a command-line front end for the register API, built on the
// same client package a programmatic consumer would use.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"classtrack/internal/client"
	"classtrack/internal/config"
	"classtrack/internal/model"
)

func main() {
	cfg := config.Load()
	api := client.New(cfg.ServerURL, cfg.HTTPTimeout)
	session := client.NewSession(api)
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "health":
		status, err := api.Health(ctx)
		if err != nil {
			log.Fatalf("health: %v", err)
		}
		fmt.Printf("%s at %s\n", status.Status, status.Timestamp)

	case "load":
		session.LoadAll(ctx)
		fmt.Printf("%d students, %d courses, %d attendance records\n",
			len(session.Students), len(session.Courses), len(session.Attendance))

	case "students":
		students, err := api.Students(ctx)
		if err != nil {
			log.Fatalf("list students: %v", err)
		}
		for _, st := range students {
			fmt.Printf("%s\t%s\t%s\t%s\n", st.StudentID, st.Name, st.Email, st.Department)
		}

	case "courses":
		courses, err := api.Courses(ctx)
		if err != nil {
			log.Fatalf("list courses: %v", err)
		}
		for _, course := range courses {
			fmt.Printf("%s\t%s\tmax %d\n", course.CourseCode, course.CourseName, course.MaxStudents)
		}

	case "attendance":
		var records []model.AttendanceRecord
		var err error
		if len(os.Args) > 2 {
			records, err = api.AttendanceForStudent(ctx, os.Args[2])
		} else {
			records, err = api.Attendance(ctx)
		}
		if err != nil {
			log.Fatalf("list attendance: %v", err)
		}
		for _, rec := range records {
			fmt.Printf("%s\t%s\tpresent=%v\t%s\n", rec.StudentID, rec.CourseCode, rec.IsPresent, rec.Timestamp)
		}

	case "add-student":
		fs := flag.NewFlagSet("add-student", flag.ExitOnError)
		id := fs.String("id", "", "external student code")
		name := fs.String("name", "", "full name")
		email := fs.String("email", "", "email address")
		dept := fs.String("dept", "", "department")
		fs.Parse(os.Args[2:])

		session.StudentDraft = session.StudentDraft.
			WithStudentID(*id).WithName(*name).WithEmail(*email).WithDepartment(*dept)
		if !session.StudentDraft.Complete() {
			log.Fatal("add-student: all of -id, -name, -email, -dept are required")
		}
		st, err := session.SubmitStudent(ctx)
		if err != nil {
			log.Fatalf("add student: %v", err)
		}
		fmt.Printf("added student %s (%s)\n", st.Name, st.ID)

	case "add-course":
		fs := flag.NewFlagSet("add-course", flag.ExitOnError)
		code := fs.String("code", "", "course code")
		name := fs.String("name", "", "course name")
		desc := fs.String("desc", "", "description")
		max := fs.String("max", "", "maximum students")
		fs.Parse(os.Args[2:])

		session.CourseDraft = session.CourseDraft.
			WithCourseCode(*code).WithCourseName(*name).WithDescription(*desc).WithMaxStudents(*max)
		if !session.CourseDraft.Complete() {
			log.Fatal("add-course: all of -code, -name, -desc, -max are required")
		}
		course, err := session.SubmitCourse(ctx)
		if err != nil {
			log.Fatalf("add course: %v", err)
		}
		fmt.Printf("added course %s (%s)\n", course.CourseName, course.ID)

	case "add-attendance":
		fs := flag.NewFlagSet("add-attendance", flag.ExitOnError)
		student := fs.String("student", "", "external student code")
		course := fs.String("course", "", "course code")
		present := fs.Bool("present", true, "present or absent")
		fs.Parse(os.Args[2:])

		session.AttendanceDraft = session.AttendanceDraft.
			WithStudentID(*student).WithCourseCode(*course).WithIsPresent(*present)
		if !session.AttendanceDraft.Complete() {
			log.Fatal("add-attendance: -student and -course are required")
		}
		rec, err := session.SubmitAttendance(ctx)
		if err != nil {
			log.Fatalf("add attendance: %v", err)
		}
		fmt.Printf("recorded attendance %s\n", rec.ID)

	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: attendctl <command> [flags]

commands:
  health                       check the server
  load                         fetch all collections and print counts
  students                     list students
  courses                      list courses
  attendance [studentId]       list attendance, optionally for one student
  add-student -id -name -email -dept
  add-course  -code -name -desc -max
  add-attendance -student -course [-present=false]

SERVER_URL selects the server (default http://localhost:3001).`)
}
