package httpserver_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"addressbook/httpserver"
	"addressbook/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{AppEnv: "local"}
}

func decodeAPIResponse(t *testing.T, recorder *httptest.ResponseRecorder) httpserver.APIResponse {
	t.Helper()
	var resp httpserver.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return resp
}

func decodeAPIResult(t *testing.T, result interface{}, out interface{}) {
	t.Helper()
	b, err := json.Marshal(result)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, out))
}
