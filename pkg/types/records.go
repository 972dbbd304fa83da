// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the records returned by the PDDIKTI public API and
// the configuration shared by the client and the CLI.
//
// JSON tags follow the API's field names verbatim, including its
// misspelling of "singkatan" in student records.
package types

// Student is a mahasiswa search hit.
type Student struct {
	ID string `json:"id" yaml:"id"`

	// Name is the student's full name as registered.
	Name string `json:"nama" yaml:"nama"`

	// NIM is the student registration number issued by the institution.
	NIM string `json:"nim" yaml:"nim"`

	Institution      string `json:"nama_pt" yaml:"nama_pt"`
	InstitutionShort string `json:"sinkatan_pt" yaml:"sinkatan_pt"`
	Program          string `json:"nama_prodi" yaml:"nama_prodi"`
}

// Lecturer is a dosen search hit.
type Lecturer struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"nama" yaml:"nama"`

	// NIDN is the national lecturer number; NUPTK the educator number.
	NIDN  string `json:"nidn" yaml:"nidn"`
	NUPTK string `json:"nuptk" yaml:"nuptk"`

	Institution      string `json:"nama_pt" yaml:"nama_pt"`
	InstitutionShort string `json:"singkatan_pt" yaml:"singkatan_pt"`
	Program          string `json:"nama_prodi" yaml:"nama_prodi"`
}

// Institution is a perguruan tinggi (pt) search hit.
type Institution struct {
	ID        string `json:"id" yaml:"id"`
	Code      string `json:"kode" yaml:"kode"`
	ShortName string `json:"nama_singkat" yaml:"nama_singkat"`
	Name      string `json:"nama" yaml:"nama"`
}

// StudyProgram is a program studi (prodi) search hit.
type StudyProgram struct {
	ID               string `json:"id" yaml:"id"`
	Name             string `json:"nama" yaml:"nama"`
	Level            string `json:"jenjang" yaml:"jenjang"`
	Institution      string `json:"pt" yaml:"pt"`
	InstitutionShort string `json:"pt_singkat" yaml:"pt_singkat"`
}

// SearchAllResult is the response of the combined search endpoint. Each
// category the API omits decodes as an empty slice.
type SearchAllResult struct {
	Students      []Student      `json:"mahasiswa" yaml:"mahasiswa"`
	Lecturers     []Lecturer     `json:"dosen" yaml:"dosen"`
	Institutions  []Institution  `json:"pt" yaml:"pt"`
	StudyPrograms []StudyProgram `json:"prodi" yaml:"prodi"`
}

// Len returns the number of records across all categories.
func (r SearchAllResult) Len() int {
	return len(r.Students) + len(r.Lecturers) + len(r.Institutions) + len(r.StudyPrograms)
}

// IsEmpty reports whether no category holds a record.
func (r SearchAllResult) IsEmpty() bool {
	return r.Len() == 0
}

// Normalize replaces nil categories with empty slices so that every
// encoding shows all four keys.
func (r *SearchAllResult) Normalize() {
	if r.Students == nil {
		r.Students = []Student{}
	}
	if r.Lecturers == nil {
		r.Lecturers = []Lecturer{}
	}
	if r.Institutions == nil {
		r.Institutions = []Institution{}
	}
	if r.StudyPrograms == nil {
		r.StudyPrograms = []StudyProgram{}
	}
}

// StudentDetail is the full record behind a Student search hit.
type StudentDetail struct {
	ID              string `json:"id" yaml:"id"`
	Name            string `json:"nama" yaml:"nama"`
	NIM             string `json:"nim" yaml:"nim"`
	Gender          string `json:"jenis_kelamin" yaml:"jenis_kelamin"`
	Institution     string `json:"nama_pt" yaml:"nama_pt"`
	InstitutionCode string `json:"kode_pt" yaml:"kode_pt"`
	Program         string `json:"prodi" yaml:"prodi"`
	ProgramCode     string `json:"kode_prodi" yaml:"kode_prodi"`
	Level           string `json:"jenjang" yaml:"jenjang"`
	EnrollmentType  string `json:"jenis_daftar" yaml:"jenis_daftar"`
	Status          string `json:"status_saat_ini" yaml:"status_saat_ini"`
	EnrolledOn      string `json:"tanggal_masuk" yaml:"tanggal_masuk"`
}
