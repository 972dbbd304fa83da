// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pddikti

import (
	"fmt"
	"strings"
)

// Kind names a record type the API can search.
type Kind string

const (
	KindAll         Kind = "all"
	KindStudent     Kind = "mahasiswa"
	KindLecturer    Kind = "dosen"
	KindInstitution Kind = "pt"
	KindProgram     Kind = "prodi"
)

// Kinds lists every searchable kind, combined search first.
var Kinds = []Kind{KindAll, KindStudent, KindLecturer, KindInstitution, KindProgram}

var kindAliases = map[string]Kind{
	"all":         KindAll,
	"mahasiswa":   KindStudent,
	"mhs":         KindStudent,
	"student":     KindStudent,
	"dosen":       KindLecturer,
	"lecturer":    KindLecturer,
	"pt":          KindInstitution,
	"institution": KindInstitution,
	"prodi":       KindProgram,
	"program":     KindProgram,
}

// ParseKind accepts a kind by its API name or its English alias.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return "", fmt.Errorf("unknown kind %q: use all, mahasiswa, dosen, pt, or prodi", s)
}

// segment is the path element of the kind's search endpoint.
func (k Kind) segment() string {
	if k == KindStudent {
		return "mhs"
	}
	return string(k)
}
