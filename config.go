package sirenfu

import (
	"github.com/sirupsen/logrus"

	"github.com/ccbrown/siren-fu/catalog"
	"github.com/ccbrown/siren-fu/siren"
)

// Config defines how resources are converted to and from Siren documents. The zero value is
// usable.
type Config struct {
	Logger logrus.FieldLogger

	// Used to look up titles for entities, links, actions, and fields. If MessageFiles are given,
	// they take priority over this.
	Catalog catalog.Catalog

	// YAML or TOML files to load messages from. Files listed first take priority.
	MessageFiles []string

	// If given, this determines the classes of entities that don't declare their own. By default,
	// the lower-cased name of the resource's type is used.
	Classifier siren.EntityClassifier

	// If given, this determines the relations of sub-entities. By default, sub-entities have the
	// "item" relation.
	RelationProvider siren.RelationProvider

	// Custom field type mappings. These are consulted in order before the defaults, and the first
	// match wins.
	FieldTypes []siren.FieldTypeMapping

	// Content types that embed hypermedia.Single or hypermedia.List can't be encoded without
	// losing their additional fields, so they're rejected unless this is true.
	AllowCustomContent bool

	// By default, decoded actions are put in the resource's Actions. If this is true, they're
	// attached to the link with the same href instead, if there is one.
	AttachActions bool

	// Used to determine the shape of sub-entities when decoding documents with shapes that don't
	// specify them.
	ResolveShape siren.ShapeResolver

	// If given, encoded documents are indented using this string.
	Indent string
}

func (cfg *Config) strategies() (siren.Strategies, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	messages := cfg.Catalog
	if len(cfg.MessageFiles) > 0 {
		var chain catalog.Chain
		for _, path := range cfg.MessageFiles {
			m, err := catalog.LoadFile(path)
			if err != nil {
				return siren.Strategies{}, err
			}
			logger.WithField("path", path).Debug("loaded message file")
			chain = append(chain, m)
		}
		if cfg.Catalog != nil {
			chain = append(chain, cfg.Catalog)
		}
		messages = chain
	}

	return siren.Strategies{
		Logger:             logger,
		Classifier:         cfg.Classifier,
		RelationProvider:   cfg.RelationProvider,
		Catalog:            messages,
		FieldTypes:         cfg.FieldTypes,
		AllowCustomContent: cfg.AllowCustomContent,
		AttachActions:      cfg.AttachActions,
		ResolveShape:       cfg.ResolveShape,
	}, nil
}
