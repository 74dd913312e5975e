//go:build !windows

package winshell

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/pathwhat/pkg/shellattr"
)

func TestStubResolverAlwaysFails(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	r, err := New(log)
	require.NoError(t, err)
	defer r.Close()

	item, mask, status := r.Resolve("/tmp", shellattr.MaskAll)
	assert.Nil(t, item)
	assert.Equal(t, shellattr.Mask(0), mask)
	assert.Equal(t, statusNotImplemented, status)
	assert.True(t, shellattr.Outcome{Status: status}.Failed())
}
