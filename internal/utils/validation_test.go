package utils

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateKey(t *testing.T) {
	assert.NoError(t, ValidateKey("NOR"))
	assert.NoError(t, ValidateKey("Americas (USA Data Proxy)"))
	assert.NoError(t, ValidateKey("Cote d'Ivoire"))

	assert.Error(t, ValidateKey(""))
	assert.Error(t, ValidateKey(strings.Repeat("a", 101)))
	assert.Error(t, ValidateKey("NOR<script>"))
	assert.Error(t, ValidateKey("../etc/passwd/x\\"))
}

func TestValidateCoordinateParams(t *testing.T) {
	assert.Empty(t, ValidateCoordinateParams(61, 9))

	fieldErrors := ValidateCoordinateParams(95, 200)
	assert.Contains(t, fieldErrors, "lat")
	assert.Contains(t, fieldErrors, "lon")
}

func TestParseFloatParam(t *testing.T) {
	params := url.Values{"lat": {"61.5"}, "bad": {"abc"}}

	v, fieldErrors := ParseFloatParam(params, "lat", nil)
	assert.Equal(t, 61.5, v)
	assert.Empty(t, fieldErrors)

	_, fieldErrors = ParseFloatParam(params, "bad", fieldErrors)
	assert.Contains(t, fieldErrors, "bad")

	// Absent keys are not an error; handlers decide whether they are required.
	_, fieldErrors = ParseFloatParam(params, "missing", nil)
	assert.Empty(t, fieldErrors)
}

func TestParseIntParam(t *testing.T) {
	params := url.Values{"year": {"2021"}, "bad": {"abc"}}

	n, fieldErrors := ParseIntParam(params, "year", nil)
	require.Empty(t, fieldErrors)
	assert.Equal(t, 2021, n)

	_, fieldErrors = ParseIntParam(params, "bad", nil)
	assert.Contains(t, fieldErrors, "bad")
}
