// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pddikti/pkg/types"
)

// writeTable renders the record types it knows. It reports false for any
// other value so the caller can fall back.
func writeTable(w io.Writer, v any) bool {
	switch r := v.(type) {
	case types.SearchAllResult:
		writeAll(w, r)
	case *types.SearchAllResult:
		writeAll(w, *r)
	case []types.Student:
		writeStudents(w, r)
	case []types.Lecturer:
		writeLecturers(w, r)
	case []types.Institution:
		writeInstitutions(w, r)
	case []types.StudyProgram:
		writePrograms(w, r)
	case types.StudentDetail:
		writeDetail(w, r)
	default:
		return false
	}
	return true
}

func writeAll(w io.Writer, r types.SearchAllResult) {
	if r.IsEmpty() {
		fmt.Fprintln(w, "No results found.")
		return
	}
	sections := []struct {
		title string
		n     int
		write func()
	}{
		{"Mahasiswa", len(r.Students), func() { writeStudents(w, r.Students) }},
		{"Dosen", len(r.Lecturers), func() { writeLecturers(w, r.Lecturers) }},
		{"Perguruan Tinggi", len(r.Institutions), func() { writeInstitutions(w, r.Institutions) }},
		{"Program Studi", len(r.StudyPrograms), func() { writePrograms(w, r.StudyPrograms) }},
	}
	first := true
	for _, s := range sections {
		if s.n == 0 {
			continue
		}
		if !first {
			fmt.Fprintln(w)
		}
		first = false
		fmt.Fprintf(w, "%s (%d)\n", s.title, s.n)
		s.write()
	}
}

func writeStudents(w io.Writer, rows []types.Student) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}
	fmt.Fprintf(w, "%-4s  %-36s  %-16s  %-30s  %s\n", "No", "Nama", "NIM", "Perguruan Tinggi", "Program Studi")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for i, s := range rows {
		fmt.Fprintf(w, "%-4d  %-36s  %-16s  %-30s  %s\n",
			i+1, truncate(s.Name, 36), truncate(s.NIM, 16), truncate(institution(s.Institution, s.InstitutionShort), 30), s.Program)
	}
}

func writeLecturers(w io.Writer, rows []types.Lecturer) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}
	fmt.Fprintf(w, "%-4s  %-36s  %-12s  %-30s  %s\n", "No", "Nama", "NIDN", "Perguruan Tinggi", "Program Studi")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for i, l := range rows {
		fmt.Fprintf(w, "%-4d  %-36s  %-12s  %-30s  %s\n",
			i+1, truncate(l.Name, 36), truncate(l.NIDN, 12), truncate(institution(l.Institution, l.InstitutionShort), 30), l.Program)
	}
}

func writeInstitutions(w io.Writer, rows []types.Institution) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}
	fmt.Fprintf(w, "%-4s  %-8s  %-12s  %s\n", "No", "Kode", "Singkatan", "Nama")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for i, p := range rows {
		fmt.Fprintf(w, "%-4d  %-8s  %-12s  %s\n", i+1, p.Code, truncate(p.ShortName, 12), p.Name)
	}
}

func writePrograms(w io.Writer, rows []types.StudyProgram) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}
	fmt.Fprintf(w, "%-4s  %-40s  %-8s  %s\n", "No", "Nama", "Jenjang", "Perguruan Tinggi")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for i, p := range rows {
		fmt.Fprintf(w, "%-4d  %-40s  %-8s  %s\n", i+1, truncate(p.Name, 40), p.Level, institution(p.Institution, p.InstitutionShort))
	}
}

func writeDetail(w io.Writer, d types.StudentDetail) {
	fields := [][2]string{
		{"Nama", d.Name},
		{"NIM", d.NIM},
		{"Jenis Kelamin", d.Gender},
		{"Perguruan Tinggi", d.Institution},
		{"Kode PT", d.InstitutionCode},
		{"Program Studi", d.Program},
		{"Kode Prodi", d.ProgramCode},
		{"Jenjang", d.Level},
		{"Jenis Daftar", d.EnrollmentType},
		{"Status", d.Status},
		{"Tanggal Masuk", d.EnrolledOn},
	}
	for _, f := range fields {
		fmt.Fprintf(w, "%-18s %s\n", f[0]+":", f[1])
	}
}

func institution(name, short string) string {
	if short == "" {
		return name
	}
	return short
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
