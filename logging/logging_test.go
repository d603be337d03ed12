package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	var buf bytes.Buffer
	defer Setup(&bytes.Buffer{}, false)

	Setup(&buf, false)
	logrus.Debug("hidden")
	logrus.WithField("restarts", 3).Info("Encoding found")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "Encoding found")
	assert.Contains(t, buf.String(), "restarts=3")

	buf.Reset()
	Setup(&buf, true)
	logrus.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}
