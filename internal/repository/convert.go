package repository

import (
	"strings"

	"famtree/internal/domain"
)

func genderFrom(s *string) *domain.Gender {
	if s == nil {
		return nil
	}
	g := domain.Gender(strings.TrimSpace(*s))
	return &g
}

func genderArg(g *domain.Gender) *string {
	if g == nil {
		return nil
	}
	s := string(*g)
	return &s
}
