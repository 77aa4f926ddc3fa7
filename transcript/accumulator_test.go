package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulatorInterleavedResults(t *testing.T) {
	var a Accumulator

	a.SetInterim("sold five")
	assert.Equal(t, "sold five", a.Snapshot())

	a.SetInterim("sold 5 t-shirts")
	assert.Equal(t, "sold 5 t-shirts", a.Snapshot())

	a.AppendFinal("sold 5 t-shirts ")
	a.SetInterim("for 20")
	assert.Equal(t, "sold 5 t-shirts for 20", a.Snapshot())

	a.AppendFinal("for 20 dollars each")
	assert.Equal(t, "sold 5 t-shirts for 20 dollars each", a.Snapshot())
	assert.Equal(t, "sold 5 t-shirts for 20 dollars each", a.Final())
}

func TestAccumulatorAppendFinalDropsInterim(t *testing.T) {
	var a Accumulator

	a.SetInterim("sold fi")
	a.AppendFinal("sold five mugs")
	assert.Equal(t, "sold five mugs", a.Snapshot())
}

func TestAccumulatorReset(t *testing.T) {
	var a Accumulator

	a.AppendFinal("sold five mugs")
	a.SetInterim("and")
	a.Reset()

	assert.Equal(t, "", a.Snapshot())
	assert.Equal(t, "", a.Final())
}
