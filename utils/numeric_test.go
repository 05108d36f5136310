package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNumber(t *testing.T) {
	assert.Equal(t, 150.0, ToNumber(150.0))
	assert.Equal(t, 5.0, ToNumber(5))
	assert.Equal(t, 27.5, ToNumber("27.5"))
	assert.Equal(t, 27.5, ToNumber(" 27.5 "))
	assert.Equal(t, 3.0, ToNumber(json.Number("3")))
	assert.Equal(t, 0.0, ToNumber("about 100"))
	assert.Equal(t, 0.0, ToNumber(nil))
	assert.Equal(t, 0.0, ToNumber([]string{"x"}))
}

func TestStripCodeFences(t *testing.T) {
	plain := `{"calories": 100}`
	assert.Equal(t, plain, StripCodeFences(plain))
	assert.Equal(t, plain, StripCodeFences("```json\n{\"calories\": 100}\n```"))
	assert.Equal(t, plain, StripCodeFences("```\n{\"calories\": 100}\n```"))
	assert.Equal(t, plain, StripCodeFences("  ```json\n{\"calories\": 100}\n```  "))
}
