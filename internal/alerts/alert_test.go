package alerts

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityCreated_SetsAlertAndParams(t *testing.T) {
	h := http.Header{}
	EntityCreated("evento", "42").Apply(h)

	assert.Equal(t, "eventoApp.evento.created", h.Get(AlertHeader))
	assert.Equal(t, "42", h.Get(ParamsHeader))
	assert.Empty(t, h.Get(ErrorHeader))
}

func TestEntityUpdatedAndDeleted_UseTheirOwnKeys(t *testing.T) {
	h := http.Header{}
	EntityUpdated("evento", "7").Apply(h)
	assert.Equal(t, "eventoApp.evento.updated", h.Get(AlertHeader))

	h = http.Header{}
	EntityDeleted("evento", "7").Apply(h)
	assert.Equal(t, "eventoApp.evento.deleted", h.Get(AlertHeader))
	assert.Equal(t, "7", h.Get(ParamsHeader))
}

func TestFailure_SetsErrorHeaders(t *testing.T) {
	h := http.Header{}
	Failure("evento", "idexists", "A new evento cannot already have an ID").Apply(h)

	assert.Equal(t, "A new evento cannot already have an ID", h.Get(ErrorHeader))
	assert.Equal(t, "error.idexists", h.Get(ErrorKeyHeader))
	assert.Equal(t, "evento", h.Get(ParamsHeader))
	assert.Empty(t, h.Get(AlertHeader))
}
