package reduction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSVPRepeat_Boundary(t *testing.T) {
	assert.Equal(t, 8*100, SVPRepeat(99, 100))
	assert.Equal(t, 1, SVPRepeat(100, 100))
	assert.Equal(t, 1, SVPRepeat(150, 100))
	assert.Equal(t, 8*1024, SVPRepeat(2, 1024))
}

func TestLLL(t *testing.T) {
	assert.Equal(t, 125000000.0, LLL(500, 0))
	assert.Equal(t, 9000.0, LLL(10, 3))
	assert.Equal(t, 1.0, LLL(1, 0))
}
