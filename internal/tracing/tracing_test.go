package tracing

import (
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	agent string
}

func (c testConfig) AgentHostPort() string { return c.agent }
func (c testConfig) ServiceName() string   { return "" }

func Test_Init_WithoutAgentKeepsNoopTracer(t *testing.T) {
	closer, err := Init(testConfig{}, "grocery-bot")
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.IsType(t, opentracing.NoopTracer{}, opentracing.GlobalTracer())
}
