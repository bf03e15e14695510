package module_test

import (
	"context"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/module"
	"github.com/nfrund/folio/internal/registry"
	"github.com/stretchr/testify/assert"
)

type greeter struct {
	module.BaseModule
}

func (greeter) Name() string { return "greeter" }

func TestBaseModule(t *testing.T) {
	var m module.Module = greeter{}
	reg := registry.New(nil)
	e := echo.New()

	assert.Equal(t, "/greeter", module.Prefix(m))
	assert.NoError(t, m.Register(reg))
	assert.NoError(t, m.Boot(context.Background(), e.Group(module.Prefix(m)), reg))
	assert.NoError(t, m.Shutdown(context.Background()))
	assert.Empty(t, reg.Keys())
}
