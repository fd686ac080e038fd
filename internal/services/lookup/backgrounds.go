package lookup

import (
	"strings"

	"github.com/spellwright/wizard-forge/internal/domain/rulebook"
	forgeerr "github.com/spellwright/wizard-forge/internal/errors"
	"github.com/spellwright/wizard-forge/internal/resolver"
)

// FindBackgroundInput holds the free-text name to resolve
type FindBackgroundInput struct {
	Name string
}

// FindBackgroundOutput holds the resolved background record
type FindBackgroundOutput struct {
	Background *rulebook.Background
}

// ListBackgroundsOutput holds every background record
type ListBackgroundsOutput struct {
	Backgrounds []rulebook.Background
}

func (s *service) FindBackground(input *FindBackgroundInput) (*FindBackgroundOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, forgeerr.InvalidArgument("background name is required")
	}

	name, ok := resolver.Resolve(input.Name, s.store.BackgroundNames())
	if !ok {
		return nil, forgeerr.NotFoundf("no background found matching '%s'", input.Name)
	}

	background, ok := s.store.BackgroundByName(name)
	if !ok {
		return nil, forgeerr.Internalf("background '%s' resolved but is not indexed", name)
	}

	return &FindBackgroundOutput{Background: background}, nil
}

func (s *service) ListBackgrounds() *ListBackgroundsOutput {
	return &ListBackgroundsOutput{Backgrounds: s.store.Backgrounds()}
}
