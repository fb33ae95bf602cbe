package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/dragon-paving/internal/domain"
)

func TestService_Path(t *testing.T) {
	s := domain.Service{Slug: "concrete"}
	assert.Equal(t, "/services/concrete", s.Path())
}

func TestService_Clone_DoesNotAlias(t *testing.T) {
	orig := domain.Service{Slug: "x", Points: []string{"a"}, Scope: []string{"b"}, Checklist: []string{"c"}}

	c := orig.Clone()
	c.Points[0] = "changed"
	c.Scope[0] = "changed"
	c.Checklist[0] = "changed"

	assert.Equal(t, "a", orig.Points[0])
	assert.Equal(t, "b", orig.Scope[0])
	assert.Equal(t, "c", orig.Checklist[0])
}

func TestBrand_Links(t *testing.T) {
	b := domain.DefaultBrand()

	assert.Equal(t, "tel:3373724666", b.TelHref())
	assert.Equal(t, "mailto:support@dragonpaving.com", b.MailtoHref())
}
