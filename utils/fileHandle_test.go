package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedCVExtension(t *testing.T) {
	allowed := []string{"resume.pdf", "resume.doc", "resume.docx", "Resume.PDF", "my cv.DocX"}
	for _, name := range allowed {
		assert.True(t, IsAllowedCVExtension(name), name)
	}

	rejected := []string{"resume.exe", "resume.txt", "resume", "resume.pdf.sh", "resume.jpeg"}
	for _, name := range rejected {
		assert.False(t, IsAllowedCVExtension(name), name)
	}
}

func TestUniqueFilename(t *testing.T) {
	first := UniqueFilename("my resume.pdf")
	second := UniqueFilename("my resume.pdf")

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, "my_resume.pdf"))
	assert.NotContains(t, first, " ")
}

func TestUniqueFilename_StripsDirectories(t *testing.T) {
	got := UniqueFilename("../../etc/passwd.pdf")

	assert.NotContains(t, got, "/")
	assert.True(t, strings.HasSuffix(got, "passwd.pdf"))
}
