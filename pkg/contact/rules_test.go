package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleSets(t *testing.T) {
	t.Parallel()

	t.Run("mecard dispatch order", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"N", "TEL", "EMAIL", "URL", "NOTE", "ORG", "ADR", "TITLE"}, meCardRules.keys())
	})

	t.Run("vcard dispatch order", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"FN", "N", "TEL", "EMAIL", "URL", "TITLE", "ORG", "ADR"}, vCardRules.keys())
	})

	t.Run("unknown key is reported", func(t *testing.T) {
		t.Parallel()
		rec := &Record{}
		assert.False(t, meCardRules.apply(rec, "X-SOCIAL", "x"))
		assert.Equal(t, &Record{}, rec)
	})
}

func TestVCardFieldRules(t *testing.T) {
	t.Parallel()

	t.Run("structured name fills empty name only", func(t *testing.T) {
		t.Parallel()
		rec := &Record{}
		applyStructuredName(rec, "Doe;Jane")
		assert.Equal(t, "Jane Doe", rec.Name)

		applyStructuredName(rec, "Roe;Rick")
		assert.Equal(t, "Jane Doe", rec.Name)
	})

	t.Run("structured name with empty components", func(t *testing.T) {
		t.Parallel()
		rec := &Record{}
		applyStructuredName(rec, "Doe;;;;")
		assert.Equal(t, "Doe", rec.Name)

		rec = &Record{}
		applyStructuredName(rec, ";;;;")
		assert.Empty(t, rec.Name)
	})

	t.Run("organization keeps first segment", func(t *testing.T) {
		t.Parallel()
		rec := &Record{}
		applyOrganization(rec, "Acme;R&D;Lab")
		assert.Equal(t, "Acme", Value(rec.Company))
	})

	t.Run("address with short component list", func(t *testing.T) {
		t.Parallel()
		rec := &Record{}
		applyAddress(rec, ";;1 Main St;Town")
		assert.Equal(t, "1 Main St, Town", Value(rec.Address))
	})
}

func TestSplitLines(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"A:1", "B:2", "C:3"}, splitLines("A:1\r\n\r\nB:2\n  \nC:3\r\n"))
}
