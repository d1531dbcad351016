package csvutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_QuotesEveryField(t *testing.T) {
	got := Encode(
		[]string{"Nome", "Prezzo"},
		[][]string{
			{"Abbonamento Base", "29.99"},
			{"Premium, Plus", "59.99"},
		},
	)

	want := `"Nome","Prezzo"` + "\n" +
		`"Abbonamento Base","29.99"` + "\n" +
		`"Premium, Plus","59.99"`
	assert.Equal(t, want, string(got))
}

func TestEncode_DoublesEmbeddedQuotes(t *testing.T) {
	got := Encode([]string{"Note"}, [][]string{{`cliente "storico"`}})
	assert.Equal(t, `"Note"`+"\n"+`"cliente ""storico"""`, string(got))
}

func TestEncode_EmptyRows(t *testing.T) {
	got := Encode([]string{"A", "B"}, nil)
	assert.Equal(t, `"A","B"`, string(got))
}

func TestReadAll_QuotedCommas(t *testing.T) {
	input := "nome,indirizzo\n" +
		`Mario,"Via Roma 1, 00100 Roma"` + "\n" +
		`Giulia,"Corso ""Vittorio"" 10"`

	records, err := ReadAll(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Mario", "Via Roma 1, 00100 Roma"}, records[1])
	assert.Equal(t, []string{"Giulia", `Corso "Vittorio" 10`}, records[2])
}

func TestReadAll_VariableFieldCounts(t *testing.T) {
	input := "a,b,c\n1,2\n1,2,3,4"
	records, err := ReadAll(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Len(t, records[1], 2)
	assert.Len(t, records[2], 4)
}

func TestEncodeReadAll_RoundTrip(t *testing.T) {
	headers := []string{"Nome", "Info"}
	rows := [][]string{{"Mario", "alta priorità, \"VIP\""}}

	records, err := ReadAll(strings.NewReader(string(Encode(headers, rows))))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, headers, records[0])
	assert.Equal(t, rows[0], records[1])
}
