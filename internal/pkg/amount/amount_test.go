package amount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, 1500.0, Parse("1500"))
	assert.Equal(t, 1500.5, Parse("1,500.50"))
	assert.Equal(t, 99.99, Parse("  99.99  "))
}

func TestParseDirtyInput(t *testing.T) {
	assert.Equal(t, 0.0, Parse(""))
	assert.Equal(t, 0.0, Parse("TBD"))
	assert.Equal(t, 0.0, Parse("100 EGP"))
}

func TestSum(t *testing.T) {
	assert.Equal(t, 600.0, Sum("100", "200", "300"))
	assert.Equal(t, 300.0, Sum("100", "not a number", "200"))
	assert.Equal(t, 0.0, Sum())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1500.00", Format(1500))
	assert.Equal(t, "0.00", Format(0))
	assert.Equal(t, "99.99", Format(99.99))
	assert.Equal(t, "1500.50", Format(Sum("1,000", "500.50")))
}
