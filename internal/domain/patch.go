package domain

import "time"

// Field is one optional field of a partial update. Set distinguishes
// "not sent" from "sent as null" (Value == nil).
type Field[T any] struct {
	Set   bool
	Value *T
}

func SetTo[T any](v T) Field[T] { return Field[T]{Set: true, Value: &v} }

func SetNull[T any]() Field[T] { return Field[T]{Set: true} }

func (f Field[T]) apply(dst **T) {
	if f.Set {
		*dst = f.Value
	}
}

type MemberPatch struct {
	FirstName  *string
	LastName   *string
	BirthDate  Field[time.Time]
	DeathDate  Field[time.Time]
	Gender     Field[Gender]
	PictureURL Field[string]
}

func (p MemberPatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && !p.BirthDate.Set &&
		!p.DeathDate.Set && !p.Gender.Set && !p.PictureURL.Set
}

// Apply returns m with the patch applied.
func (p MemberPatch) Apply(m Member) Member {
	if p.FirstName != nil {
		m.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		m.LastName = *p.LastName
	}
	p.BirthDate.apply(&m.BirthDate)
	p.DeathDate.apply(&m.DeathDate)
	p.Gender.apply(&m.Gender)
	p.PictureURL.apply(&m.PictureURL)
	return m
}

type MarriagePatch struct {
	MarriageDate Field[time.Time]
	DivorceDate  Field[time.Time]
}

func (p MarriagePatch) Apply(m Marriage) Marriage {
	p.MarriageDate.apply(&m.MarriageDate)
	p.DivorceDate.apply(&m.DivorceDate)
	return m
}
