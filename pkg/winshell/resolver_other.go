//go:build !windows

package winshell

import (
	"github.com/sirupsen/logrus"

	"github.com/grovetools/pathwhat/pkg/shellattr"
)

// E_NOTIMPL, reported on platforms that have no shell namespace.
const statusNotImplemented shellattr.Status = 0x80004001

// Resolver is the non-Windows stand-in. Every Resolve fails with E_NOTIMPL,
// so the tool still builds everywhere and reports a status line instead of
// pretending to classify anything.
type Resolver struct {
	log *logrus.Logger
}

// New returns a resolver that rejects every path.
func New(log *logrus.Logger) (*Resolver, error) {
	return &Resolver{log: log}, nil
}

// Close is a no-op; nothing was acquired.
func (r *Resolver) Close() {}

func (r *Resolver) Resolve(path string, requested shellattr.Mask) (shellattr.Item, shellattr.Mask, shellattr.Status) {
	r.log.WithField("path", path).Debug("shell namespace not available on this platform")
	return nil, 0, statusNotImplemented
}

var _ shellattr.Resolver = (*Resolver)(nil)
