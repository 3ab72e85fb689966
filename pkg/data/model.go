package data

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// StatCount is the number of base stats every record carries.
const StatCount = 6

type Stats struct {
	HP             int
	Attack         int
	Defense        int
	SpecialAttack  int
	SpecialDefense int
	Speed          int
}

// Values returns the stats in their fixed display order.
func (s Stats) Values() [StatCount]int {
	return [StatCount]int{s.HP, s.Attack, s.Defense, s.SpecialAttack, s.SpecialDefense, s.Speed}
}

// StatsFromValues builds Stats from values in HP, Attack, Defense,
// Sp. Atk, Sp. Def, Speed order.
func StatsFromValues(v [StatCount]int) Stats {
	return Stats{
		HP:             v[0],
		Attack:         v[1],
		Defense:        v[2],
		SpecialAttack:  v[3],
		SpecialDefense: v[4],
		Speed:          v[5],
	}
}

type Record struct {
	ID         int
	Name       string
	ImageURL   string // empty when the source has no image
	Experience int
	Types      []string // one or two type names, primary first
	Height     int      // decimetres
	Weight     int      // hectograms
	Stats      Stats
}

// DisplayName returns the name with its first letter upper-cased.
func (r *Record) DisplayName() string {
	first, size := utf8.DecodeRuneInString(r.Name)
	if first == utf8.RuneError {
		return r.Name
	}
	return string(unicode.ToUpper(first)) + r.Name[size:]
}

func (r *Record) PrimaryType() string {
	if len(r.Types) == 0 {
		return ""
	}
	return r.Types[0]
}

func (r *Record) SecondaryType() (string, bool) {
	if len(r.Types) < 2 {
		return "", false
	}
	return r.Types[1], true
}

func (r *Record) HeightMeters() float64 {
	return float64(r.Height) / 10
}

func (r *Record) WeightKilograms() float64 {
	return float64(r.Weight) / 10
}

func (r *Record) HasImage() bool {
	return strings.TrimSpace(r.ImageURL) != ""
}
