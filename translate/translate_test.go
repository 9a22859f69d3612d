package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage("en-US")

	assert.Equal("label skip missing", From("label %v missing", "skip"))
	assert.Equal("line 3 divide by zero", From("line %d %v", 3, "divide by zero"))
}

func TestSetLanguageFallback(t *testing.T) {
	assert := assert.New(t)

	SetLanguage("not a language tag!")
	assert.Equal("ip empty", From("ip empty"))

	SetLanguage("en-US")
}
