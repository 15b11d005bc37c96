package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPlainText(t *testing.T) {
	text, err := Extract("resume.txt", []byte("Python, SQL, Excel"))
	require.NoError(t, err)
	assert.Equal(t, "Python, SQL, Excel", text)
}

func TestExtractUnsupportedFormat(t *testing.T) {
	_, err := Extract("resume.png", []byte{0x89, 0x50})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractGarbagePDF(t *testing.T) {
	_, err := Extract("resume.pdf", []byte("this is not a pdf"))
	assert.ErrorIs(t, err, ErrUnreadableDocument)
}

func TestExtractGarbageDocx(t *testing.T) {
	_, err := Extract("resume.docx", []byte("this is not a docx"))
	assert.ErrorIs(t, err, ErrUnreadableDocument)
}

func TestSupportedExtension(t *testing.T) {
	assert.True(t, SupportedExtension("cv.pdf"))
	assert.True(t, SupportedExtension("CV.PDF"))
	assert.True(t, SupportedExtension("cv.docx"))
	assert.True(t, SupportedExtension("cv.txt"))
	assert.False(t, SupportedExtension("cv.png"))
	assert.False(t, SupportedExtension("cv"))
}
