package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pinboard/internal/domain/entity"
)

func TestDecodeStorageDump(t *testing.T) {
	items, err := decodeStorageDump(`{"theme":"dark","count":"42","prefs":"{\"z\":1,\"a\":2}","big":"{\"id\":9007199254740993}","broken":"{oops"}`)
	require.NoError(t, err)

	assert.Equal(t, "dark", items["theme"])
	assert.Equal(t, "42", items["count"])
	assert.Equal(t, `{"z":1,"a":2}`, items["prefs"])
	assert.Equal(t, `{"id":9007199254740993}`, items["big"])
	assert.Equal(t, "{oops", items["broken"])
}

func TestDecodeStorageDump_Invalid(t *testing.T) {
	_, err := decodeStorageDump(`not json`)
	require.Error(t, err)
}

func TestStorageObject(t *testing.T) {
	s, err := storageObject(entity.PropertyTypeLocalStorage)
	require.NoError(t, err)
	assert.Equal(t, "localStorage", s)

	s, err = storageObject(entity.PropertyTypeSessionStorage)
	require.NoError(t, err)
	assert.Equal(t, "sessionStorage", s)

	_, err = storageObject(entity.PropertyTypeCookie)
	require.Error(t, err)
}

func TestIsInternalTarget(t *testing.T) {
	assert.True(t, isInternalTarget("devtools://devtools/bundled/inspector.html"))
	assert.True(t, isInternalTarget("chrome-extension://abc/popup.html"))
	assert.False(t, isInternalTarget("https://example.com"))
	assert.False(t, isInternalTarget("chrome://newtab/"))
}
