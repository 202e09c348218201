package table

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestRender(t *testing.T) {
	rendered := Render(
		[]string{"aap", "noot", "mies"},
		[]string{"bananen", "citroenen", "limoenen"},
		[][]string{
			{"1", "2", "3"},
			{"4", "5", "6"},
			{"7", "8", "9"},
		},
	)

	expected := "     | bananen | citroenen | limoenen\n" +
		"aap  | 1 | 2 | 3\n" +
		"noot | 4 | 5 | 6\n" +
		"mies | 7 | 8 | 9"

	assert.Equal(t, expected, rendered)
}

func TestRender_DataCellsAreRightAligned(t *testing.T) {
	rendered := Render(
		[]string{"a", "bb"},
		[]string{"x", "y"},
		[][]string{
			{"100", "1"},
			{"1", "2.50"},
		},
	)

	expected := "   | x | y\n" +
		"a  | 100 |    1\n" +
		"bb |   1 | 2.50"

	assert.Equal(t, expected, rendered)
}

func TestRender_MissingCellsAreBlank(t *testing.T) {
	rendered := Render(
		[]string{"a", "b"},
		[]string{"x", "y"},
		[][]string{
			{"1"},
			{"", "2"},
		},
	)

	expected := "  | x | y\n" +
		"a | 1 |  \n" +
		"b |   | 2"

	assert.Equal(t, expected, rendered)
}

func TestRender_NoColumns(t *testing.T) {
	rendered := Render([]string{"a"}, nil, [][]string{{}})
	assert.Equal(t, " \na", rendered)
}

func TestRender_NoRows(t *testing.T) {
	rendered := Render(nil, []string{"x"}, nil)
	assert.Equal(t, " | x", rendered)
}
