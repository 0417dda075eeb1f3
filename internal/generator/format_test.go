package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatGo(t *testing.T) {
	src := []byte("package msgs\nimport (\n\"sync\"\n\"fmt\"\n)\nvar _ = fmt.Sprint\nvar _ sync.Once\n")

	out, err := FormatGo("msgs/x.go", src)
	require.NoError(t, err)
	assert.Equal(t, "package msgs\n\nimport (\n\t\"fmt\"\n\t\"sync\"\n)\n\nvar _ = fmt.Sprint\nvar _ sync.Once\n", string(out))
}

func TestFormatGo_SyntaxError(t *testing.T) {
	_, err := FormatGo("bad.go", []byte("package msgs\nfunc {"))
	require.Error(t, err)

	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "bad.go", fe.Filename)
	assert.NotEmpty(t, fe.Source)
}
