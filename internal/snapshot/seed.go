// Package snapshot reads and writes whole family networks: YAML seed files
// written by hand and JSON backups produced by export.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"famtree/internal/domain"
)

const dateLayout = "2006-01-02"

// Seed is the YAML seed format. Members are referenced by key instead of
// database id.
type Seed struct {
	Members   []SeedMember   `yaml:"members"`
	Marriages []SeedMarriage `yaml:"marriages"`
	Parents   []SeedParent   `yaml:"parents"`
}

type SeedMember struct {
	Key        string `yaml:"key"`
	FirstName  string `yaml:"first_name"`
	LastName   string `yaml:"last_name"`
	BirthDate  string `yaml:"birth_date"`
	DeathDate  string `yaml:"death_date"`
	Gender     string `yaml:"gender"`
	PictureURL string `yaml:"picture_url"`
}

type SeedMarriage struct {
	Spouses      []string `yaml:"spouses"`
	MarriageDate string   `yaml:"marriage_date"`
	DivorceDate  string   `yaml:"divorce_date"`
}

type SeedParent struct {
	Parent string `yaml:"parent"`
	Child  string `yaml:"child"`
}

// LoadYAML decodes a seed and turns it into a network whose member ids are
// positions in the file, starting at 1.
func LoadYAML(r io.Reader) (*domain.FamilyNetwork, error) {
	var s Seed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &domain.FamilyNetwork{
				Members:     []domain.Member{},
				Marriages:   []domain.Marriage{},
				ParentChild: []domain.ParentChild{},
			}, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return s.Network()
}

func (s Seed) Network() (*domain.FamilyNetwork, error) {
	n := &domain.FamilyNetwork{
		Members:     make([]domain.Member, 0, len(s.Members)),
		Marriages:   make([]domain.Marriage, 0, len(s.Marriages)),
		ParentChild: make([]domain.ParentChild, 0, len(s.Parents)),
	}
	ids := make(map[string]int32, len(s.Members))
	for i, sm := range s.Members {
		key := strings.TrimSpace(sm.Key)
		if key == "" {
			return nil, fmt.Errorf("members[%d]: key is required", i)
		}
		if _, dup := ids[key]; dup {
			return nil, fmt.Errorf("members[%d]: duplicate key %q", i, key)
		}
		m, err := sm.member()
		if err != nil {
			return nil, fmt.Errorf("members[%d] %s: %w", i, key, err)
		}
		m.ID = int32(i + 1)
		ids[key] = m.ID
		n.Members = append(n.Members, m)
	}

	lookup := func(key string) (int32, error) {
		id, ok := ids[strings.TrimSpace(key)]
		if !ok {
			return 0, fmt.Errorf("unknown member key %q", key)
		}
		return id, nil
	}

	for i, sm := range s.Marriages {
		if len(sm.Spouses) != 2 {
			return nil, fmt.Errorf("marriages[%d]: need exactly two spouses", i)
		}
		a, err := lookup(sm.Spouses[0])
		if err != nil {
			return nil, fmt.Errorf("marriages[%d]: %w", i, err)
		}
		b, err := lookup(sm.Spouses[1])
		if err != nil {
			return nil, fmt.Errorf("marriages[%d]: %w", i, err)
		}
		m := domain.Marriage{ID: int32(i + 1), Spouse1ID: a, Spouse2ID: b}
		if m.MarriageDate, err = parseDate(sm.MarriageDate); err != nil {
			return nil, fmt.Errorf("marriages[%d] marriage_date: %w", i, err)
		}
		if m.DivorceDate, err = parseDate(sm.DivorceDate); err != nil {
			return nil, fmt.Errorf("marriages[%d] divorce_date: %w", i, err)
		}
		n.Marriages = append(n.Marriages, m)
	}

	for i, sp := range s.Parents {
		p, err := lookup(sp.Parent)
		if err != nil {
			return nil, fmt.Errorf("parents[%d]: %w", i, err)
		}
		c, err := lookup(sp.Child)
		if err != nil {
			return nil, fmt.Errorf("parents[%d]: %w", i, err)
		}
		n.ParentChild = append(n.ParentChild, domain.ParentChild{ID: int32(i + 1), ParentID: p, ChildID: c})
	}
	return n, nil
}

func (sm SeedMember) member() (domain.Member, error) {
	m := domain.Member{
		FirstName: strings.TrimSpace(sm.FirstName),
		LastName:  strings.TrimSpace(sm.LastName),
	}
	var err error
	if m.BirthDate, err = parseDate(sm.BirthDate); err != nil {
		return m, fmt.Errorf("birth_date: %w", err)
	}
	if m.DeathDate, err = parseDate(sm.DeathDate); err != nil {
		return m, fmt.Errorf("death_date: %w", err)
	}
	if g := strings.TrimSpace(sm.Gender); g != "" {
		gender := domain.Gender(strings.ToLower(g))
		if !gender.Valid() {
			return m, fmt.Errorf("unknown gender %q", g)
		}
		m.Gender = &gender
	}
	if u := strings.TrimSpace(sm.PictureURL); u != "" {
		m.PictureURL = &u
	}
	return m, nil
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
