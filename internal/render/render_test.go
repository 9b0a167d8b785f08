package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitle(t *testing.T) {
	assert.Equal(t, "Cover Letter for ML Engineer at Netflix", Title(" Netflix ", "ML Engineer"))
	assert.Equal(t, "Cover Letter at Netflix", Title("Netflix", "  "))
}

func TestFilename(t *testing.T) {
	tests := map[string]string{
		"Cover Letter for ML Engineer at Netflix": "cover_letter_for_ml_engineer_at_netflix.txt",
		"Cover Letter at AT&T":                    "cover_letter_at_at_t.txt",
		"Cover Letter at Тинькофф":                "cover_letter_at_________.txt",
		"":                                        ".txt",
	}

	for title, want := range tests {
		assert.Equal(t, want, Filename(title), title)
	}
}

func TestPlainText(t *testing.T) {
	in := "Dear Hiring Manager,\n\nI studied at <b>CMU</b> & worked at <b>Netflix</b>.\n\nSincerely,\nJane"
	want := "Dear Hiring Manager,\n\nI studied at CMU & worked at Netflix.\n\nSincerely,\nJane"

	assert.Equal(t, want, PlainText(in))
	assert.Equal(t, "I'm here", PlainText("I'm here"))
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "letters")

	path, err := Save(dir, "Cover Letter at Acme", "Dear Hiring Manager,")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cover_letter_at_acme.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Dear Hiring Manager,\n", string(data))
}
