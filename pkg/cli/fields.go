package cli

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slacknotify/pkg/domain"
	"github.com/m-mizutani/slacknotify/pkg/domain/model"
)

// ParseFields converts "title=value" arguments into attachment fields
func ParseFields(specs []string, short bool) ([]model.Field, error) {
	fields := make([]model.Field, 0, len(specs))
	for _, spec := range specs {
		title, value, ok := strings.Cut(spec, "=")
		if !ok || strings.TrimSpace(title) == "" {
			return nil, goerr.Wrap(domain.ErrInvalidArgument, "field must be title=value", goerr.V("field", spec))
		}
		fields = append(fields, model.Field{
			Title: strings.TrimSpace(title),
			Value: value,
			Short: short,
		})
	}
	return fields, nil
}
