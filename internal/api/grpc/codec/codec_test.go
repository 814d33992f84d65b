package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

type msg struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

func TestJSON_Registered(t *testing.T) {
	c := encoding.GetCodec(Name)
	require.NotNil(t, c)
	assert.Equal(t, Name, c.Name())
}

func TestJSON_Marshal(t *testing.T) {
	b, err := JSON{}.Marshal(&msg{Name: "Paris", Country: "FR"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Paris","country":"FR"}`, string(b))
}

func TestJSON_UnmarshalEmptyBody(t *testing.T) {
	var m msg
	require.NoError(t, JSON{}.Unmarshal(nil, &m))
	assert.Equal(t, msg{}, m)
}

func TestJSON_UnmarshalMalformed(t *testing.T) {
	var m msg
	err := JSON{}.Unmarshal([]byte(`{"name":`), &m)
	assert.Error(t, err)
}
