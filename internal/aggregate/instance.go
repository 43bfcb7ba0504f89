package aggregate

import (
	"strings"

	"github.com/gracobjo/sentencias/internal/model"
)

// InstanceOf infers the issuing court tier from the document name. Supreme
// court rulings usually carry an sts prefix in Spanish legal corpora;
// appellate rulings carry a tsj prefix.
func InstanceOf(docID string) model.Instance {
	name := strings.ToLower(docID)
	switch {
	case strings.HasPrefix(name, "sts_"),
		strings.HasPrefix(name, "sts-"),
		strings.HasPrefix(name, "sts "),
		strings.Contains(name, "tribunal_supremo"),
		strings.Contains(name, "tribunal supremo"):
		return model.InstanceSupreme
	case strings.HasPrefix(name, "tsj_"),
		strings.HasPrefix(name, "tsj-"),
		strings.HasPrefix(name, "tsj "),
		strings.Contains(name, "tribunal_superior"),
		strings.Contains(name, "tribunal superior"):
		return model.InstanceAppellate
	default:
		return model.InstanceOther
	}
}
