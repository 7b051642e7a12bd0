package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTagName(t *testing.T) {
	// canonical form: trimmed, original case kept
	assert.Equal(t, "Rust", NormalizeTagName("  Rust "))
	assert.Equal(t, "go", NormalizeTagName("go"))
	assert.Equal(t, "", NormalizeTagName("   "))
}

func TestDedupeTagNames(t *testing.T) {
	got := DedupeTagNames([]string{" rust ", "Go", "RUST", "", "go", "sql"})
	// first occurrence wins, case-insensitive duplicates and empties dropped
	assert.Equal(t, []string{"rust", "Go", "sql"}, got)
}

func TestDedupeTagNamesEmpty(t *testing.T) {
	assert.Empty(t, DedupeTagNames(nil))
	assert.Empty(t, DedupeTagNames([]string{"", "  "}))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "uq_tags_name_lower" (SQLSTATE 23505)`)))
	assert.True(t, isUniqueViolation(errors.New("UNIQUE constraint failed: tags.tag_name")))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(nil))
}
