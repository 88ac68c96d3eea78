package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// docLines strips the init sequence and splits the stream on line feeds.
func docLines(d *Document) []string {
	data := bytes.TrimPrefix(d.Bytes(), []byte{ESC, '@'})
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestMoneyLineRightAlignsAmount(t *testing.T) {
	doc := NewDocument(32)
	doc.MoneyLine("Subtotal:", 180.0)

	lines := docLines(doc)
	require.Len(t, lines, 1)
	assert.Len(t, lines[0], 32)
	assert.True(t, strings.HasPrefix(lines[0], "Subtotal:"))
	assert.True(t, strings.HasSuffix(lines[0], "180.00"))
}

func TestTaxLineShowsRate(t *testing.T) {
	doc := NewDocument(32)
	doc.TaxLine("CGST", 2.5, 4.5).
		TaxLine("SGST", 2.5, 4.5)

	lines := docLines(doc)
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "CGST @2.5%:"))
	assert.True(t, strings.HasSuffix(lines[0], "4.50"))
	assert.True(t, strings.HasPrefix(lines[1], "SGST @2.5%:"))
}

func TestItemLineTruncatesLongNames(t *testing.T) {
	doc := NewDocument(32)
	doc.ItemLine(2, "Paneer Butter Masala Family Pack Special", "380.00")

	lines := docLines(doc)
	require.Len(t, lines, 1)
	assert.Len(t, lines[0], 32)
	assert.True(t, strings.HasSuffix(lines[0], " 380.00"))
}

func TestItemLineShortNameKeepsFullText(t *testing.T) {
	doc := NewDocument(32)
	doc.ItemLine(1, "Cola", "50.00")

	lines := docLines(doc)
	require.Len(t, lines, 1)
	assert.Equal(t, "1x Cola", lines[0][:7])
	assert.True(t, strings.HasSuffix(lines[0], "50.00"))
}
