package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func identity(s string) string { return s }

func TestAssembleVertical(t *testing.T) {
	r := fruitResult(t)

	expected := "apple\t + \n" +
		"banana\t<-1.00->\tBanana\n" +
		"cherry\t<-1.00->\tCherry\n" +
		"\t       x\tDate\n"

	assert.Equal(t, expected, AssembleVertical(r, identity))
}

func TestAssembleHorizontal(t *testing.T) {
	r := fruitResult(t)

	expected := "apple\tbanana\tcherry\t\n" +
		"+\t|\t|\t\n" +
		"\t|\t|\t-\t\n" +
		"\tBanana\tCherry\tDate\t"

	assert.Equal(t, expected, AssembleHorizontal(r, identity))
}
