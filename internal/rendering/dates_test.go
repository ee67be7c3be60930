package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate_YearMonth(t *testing.T) {
	assert.Equal(t, "Mar 2021", FormatDate("2021-03"))
	assert.Equal(t, "Dec 2019", FormatDate("2019-12"))
}

func TestFormatDate_FullDate(t *testing.T) {
	assert.Equal(t, "Jun 2016", FormatDate("2016-06-15"))
}

func TestFormatDate_Present(t *testing.T) {
	assert.Equal(t, "Present", FormatDate("present"))
}

func TestFormatDate_Empty(t *testing.T) {
	assert.Equal(t, "Present", FormatDate(""))
}

func TestFormatDate_UnparseablePassesThrough(t *testing.T) {
	assert.Equal(t, "circa 2019", FormatDate("circa 2019"))
}
