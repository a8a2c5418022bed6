//go:build unit
// +build unit

package listing

import (
	"testing"

	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"
	"github.com/stretchr/testify/assert"
)

func TestPage_Defaults(t *testing.T) {
	var p Page
	assert.Equal(t, DefaultLimit, p.EffectiveLimit())
	assert.Equal(t, SortDesc, p.EffectiveSortOrder())

	p = Page{Limit: 10, SortOrder: SortAsc}
	assert.Equal(t, 10, p.EffectiveLimit())
	assert.Equal(t, SortAsc, p.EffectiveSortOrder())
}

func TestPage_Validate(t *testing.T) {
	assert.NoError(t, validators.Struct(&Page{Limit: MaxLimit}))
	assert.Error(t, validators.Struct(&Page{Limit: MaxLimit + 1}))
	assert.Error(t, validators.Struct(&Page{Offset: -1}))
	assert.Error(t, validators.Struct(&Page{SortOrder: "sideways"}))
}
