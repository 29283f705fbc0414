package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSchoolEmail(t *testing.T) {
	assert.True(t, IsSchoolEmail("taro@beauty.ac.jp"))
	assert.True(t, IsSchoolEmail("jane@cs.stanford.edu"))
	assert.True(t, IsSchoolEmail("MIXED@Beauty.AC.JP"))

	assert.False(t, IsSchoolEmail("taro@gmail.com"))
	assert.False(t, IsSchoolEmail("taro@acjp.com"))
	assert.False(t, IsSchoolEmail("no-at-sign"))
	assert.False(t, IsSchoolEmail("trailing@"))
}
