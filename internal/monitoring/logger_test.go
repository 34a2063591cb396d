package monitoring

import (
	"bytes"
	"fmt"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixed(t *testing.T) {
	var got []string
	f := func(format string, v ...interface{}) {
		got = append(got, fmt.Sprintf(format, v...))
	}

	Prefixed("solver: ", f)("zero at %dm", 100)
	assert.Equal(t, []string{"solver: zero at 100m"}, got)
}

func TestPrefixed_Nil(t *testing.T) {
	assert.NotPanics(t, func() {
		Prefixed("solver: ", nil)("test message")
	})
}

func TestStd(t *testing.T) {
	var buf bytes.Buffer
	original := log.Writer()
	flags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	defer func() {
		log.SetOutput(original)
		log.SetFlags(flags)
	}()

	Std("test message: %s", "value")
	assert.Equal(t, "test message: value\n", buf.String())
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard("test message: %s", "value")
	})
}
