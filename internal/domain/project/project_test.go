package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTools(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, NormalizeTools("a, b ,c"))
}

func TestNormalizeTools_DropsEmptySegments(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, NormalizeTools("a,,b"))
	assert.Equal(t, []string{"a"}, NormalizeTools("a,"))
}

func TestNormalizeTools_EmptyInput(t *testing.T) {
	assert.Empty(t, NormalizeTools(""))
	assert.Empty(t, NormalizeTools("  ,  , "))
}

func TestNormalizeTools_PreservesOrder(t *testing.T) {
	assert.Equal(t, []string{"Go", "Postgres", "Redis"}, NormalizeTools("Go,Postgres,Redis"))
}

func TestValidate_EmptyTitle(t *testing.T) {
	p := &Project{}
	assert.ErrorIs(t, p.Validate(), ErrEmptyTitle)

	p.Title = "devfolio"
	assert.NoError(t, p.Validate())
}
