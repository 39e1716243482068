package v1alpha1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"

	"github.com/KirkDiggler/paranormal-api/internal/api/v1alpha1"
)

func TestCodecIsRegistered(t *testing.T) {
	codec := encoding.GetCodec(v1alpha1.CodecName)
	require.NotNil(t, codec)
	assert.Equal(t, v1alpha1.CodecName, codec.Name())
}

func TestCodecCarriesMessages(t *testing.T) {
	codec := v1alpha1.Codec{}
	in := &v1alpha1.AdjustPoolRequest{CharacterId: "char-1", Pool: "health", Delta: -4}

	data, err := codec.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"character_id":"char-1","pool":"health","delta":-4}`, string(data))

	out := &v1alpha1.AdjustPoolRequest{}
	require.NoError(t, codec.Unmarshal(data, out))
	assert.Equal(t, in, out)
}

func TestGameMasterMethods(t *testing.T) {
	assert.Contains(t, v1alpha1.GameMasterMethods, "/paranormal.api.v1alpha1.CatalogService/PutEntry")
	assert.Contains(t, v1alpha1.GameMasterMethods, "/paranormal.api.v1alpha1.CharacterService/UpdateCharacter")
	assert.NotContains(t, v1alpha1.GameMasterMethods, v1alpha1.CatalogService_ListEntries_FullMethodName)
}
