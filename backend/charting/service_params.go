package charting

import (
	url2 "github.com/fernandosanchezjr/sparsefsm/backend/url"
	"github.com/fernandosanchezjr/sparsefsm/config"
	"github.com/fernandosanchezjr/sparsefsm/generators"
	"github.com/fernandosanchezjr/sparsefsm/governor"
	"net/url"
)

// ParseRequest reads d, m, n, s and generator, falling back to defaults for the first three.
func ParseRequest(values url.Values, defaults config.Defaults) (request *governor.Request, err error) {
	request = &governor.Request{
		Distance: defaults.Distance,
		States:   defaults.States,
		Width:    defaults.Width,
	}
	if err = url2.ParseInt("d", values, &request.Distance); err != nil {
		return
	}
	if err = url2.ParseInt("m", values, &request.States); err != nil {
		return
	}
	if err = url2.ParseInt("n", values, &request.Width); err != nil {
		return
	}
	if err = url2.ParseSeed("s", values, &request.Seed.Value, &request.Seed.Present); err != nil {
		return
	}
	var generator string
	url2.ParseString("generator", values, &generator)
	if generator != "" {
		var kind generators.Kind
		if kind, err = generators.ParseKind(generator); err != nil {
			return
		}
		request.Generator = kind
	}
	return
}
