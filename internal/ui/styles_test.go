package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetStyles_NoColorRendersPlainText(t *testing.T) {
	styles := GetStyles(true)

	assert.Equal(t, "Title", styles.Title.Render("Title"))
	assert.Equal(t, "snippet text", styles.Snippet.Render("snippet text"))
}

func TestGetStyles_SelectsByPreference(t *testing.T) {
	assert.Equal(t, NoColorStyles(), GetStyles(true))
	assert.Equal(t, DefaultStyles(), GetStyles(false))
}
