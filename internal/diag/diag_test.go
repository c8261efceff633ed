package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	d := Inconsistent("ClassName", "a/b.resx")
	assert.Equal(t, InconsistentProperty, d.Kind)
	assert.Equal(t, "ClassName", d.Property)
	assert.Equal(t, "a/b.resx", d.Path)

	assert.Equal(t, InvalidDescriptionFile, InvalidFile("x.resx").Kind)
	assert.Equal(t, UnresolvedNamespace, NoNamespace("x.resx").Kind)
	assert.Equal(t, UnresolvedResourceName, NoResourceName("x.resx").Kind)
}

func TestMessages(t *testing.T) {
	assert.Contains(t, InvalidFile("x.resx").Message(), `"x.resx"`)
	assert.Contains(t, Inconsistent("ClassName", "x.resx").Message(), `"ClassName"`)
	assert.Contains(t, NoNamespace("x.resx").Message(), "namespace")
	assert.Contains(t, NoResourceName("x.resx").Message(), "resource name")
}
