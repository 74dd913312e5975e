package shellattr

import "github.com/sirupsen/logrus"

// Classifier asks a Resolver how the shell namespace classifies a path.
// It holds no state across calls.
type Classifier struct {
	resolver Resolver
	log      *logrus.Logger
}

// NewClassifier wraps a resolver. A nil logger gets a default stderr logger
// at warn level.
func NewClassifier(r Resolver, log *logrus.Logger) *Classifier {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}
	return &Classifier{resolver: r, log: log}
}

// Classify resolves path and returns either the resolver's failure status or
// the attribute mask of the resolved item. The item reference acquired on
// success is released before Classify returns; it never escapes this call.
func (c *Classifier) Classify(path string) Outcome {
	c.log.WithField("path", path).Debug("resolving display name")

	item, mask, status := c.resolver.Resolve(path, MaskAll)
	if !status.OK() {
		c.log.WithFields(logrus.Fields{
			"path":   path,
			"status": status.String(),
		}).Debug("resolver rejected path")
		return Outcome{Status: status}
	}
	defer item.Release()

	c.log.WithFields(logrus.Fields{
		"path": path,
		"mask": mask.String(),
	}).Debug("resolved")
	return Outcome{Mask: mask}
}
